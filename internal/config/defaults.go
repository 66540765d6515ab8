package config

const (
	defaultConfigPath     = "~/.config/corpusstat/config.toml"
	projectConfigName     = "corpusstat.toml"
	lockFileName          = ".corpusstat.lock"
	defaultCorpusDir      = "corpus"
	defaultMetadataFile   = "data/metadata.csv"
	defaultResultsDir     = "results"
	defaultStatisticsFile = "statistics.csv"
	defaultReportFile     = "report.txt"
	defaultHistoryFile    = "history.db"
	defaultExtension      = ".txt"
	defaultWorkers        = 1
	defaultTopLemmas      = 10
	defaultTopVerbs       = 5
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"

	envCorpusDir  = "CORPUSSTAT_CORPUS_DIR"
	envResultsDir = "CORPUSSTAT_RESULTS_DIR"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CorpusDir:      defaultCorpusDir,
			MetadataFile:   defaultMetadataFile,
			ResultsDir:     defaultResultsDir,
			StatisticsFile: defaultStatisticsFile,
			ReportFile:     defaultReportFile,
		},
		Analysis: Analysis{
			Extension: defaultExtension,
			Workers:   defaultWorkers,
			TopLemmas: defaultTopLemmas,
			TopVerbs:  defaultTopVerbs,
		},
		Characters: DefaultCharacters(),
		Colors:     DefaultColors(),
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled: true,
		},
	}
}

// DefaultCharacters returns the Witcher character groups.
func DefaultCharacters() []CharacterGroup {
	return []CharacterGroup{
		{Name: "Геральт", Lemmas: []string{"волк", "белый", "геральт", "белоголовый", "беловолосый", "ведьмак", "охотник", "сталь", "меч"}},
		{Name: "Цири", Lemmas: []string{"ласточка", "дитя", "девочка", "цири", "цирилла", "фалька", "пепельный", "зеленый", "башня"}},
		{Name: "Йеннифэр", Lemmas: []string{"йеннифэр", "йеннифер", "йен", "чародейка", "сирень", "крыжовник", "ночь"}},
	}
}

// DefaultColors returns the colour groups of the colour histogram.
func DefaultColors() []ColorGroup {
	return []ColorGroup{
		{Name: "черный", Variants: []string{"черный", "чёрный", "чернота"}},
		{Name: "белый", Variants: []string{"белый", "беловатый", "белизна", "белоголовый", "беловолосый"}},
		{Name: "красный", Variants: []string{"красный", "краснота", "красноватый", "кровь", "кровавый"}},
		{Name: "желтый", Variants: []string{"желтый", "золотой", "золото"}},
		{Name: "зеленый", Variants: []string{"изумрудный", "изумруд", "зелень", "зеленый"}},
		{Name: "серый", Variants: []string{"пепельный", "пепел", "серебро", "серебряный", "серый", "сталь", "стальной"}},
		{Name: "фиолетовый", Variants: []string{"фиолетовый", "фиалковый", "фиалка", "сирень"}},
	}
}
