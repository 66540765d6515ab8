// Package morph is a dictionary-driven morphological analyzer for Russian.
//
// Word forms are resolved in three steps. Suppletive and closed-class forms
// come from an irregular table. Regular forms are split at every rune
// boundary into a stem and an ending; a parse exists when the stem is a
// radical of a lexicon entry and the ending belongs to the same radical of
// that entry's paradigm. Words the dictionary does not know are handed to a
// suffix predictor trained on the generated dictionary forms.
//
// Tags use OpenCorpora grammeme names (NOUN, VERB, nomn, sing, ...), so tags
// read the same as in other Russian morphology tools.
//
// The dictionary data is embedded; WithDataDir points the analyzer at a
// directory holding replacement files with the same names.
package morph
