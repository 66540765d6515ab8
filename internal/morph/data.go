package morph

import "embed"

//go:embed data/*.txt
var embeddedData embed.FS

const (
	paradigmsFile = "paradigms.txt"
	lexiconFile   = "lexicon.txt"
	irregularFile = "irregular.txt"
	stopwordsFile = "stopwords.txt"
)
