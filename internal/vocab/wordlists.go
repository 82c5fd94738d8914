// internal/vocab/wordlists.go
package vocab

// 静的な語彙テーブル。プロセス起動時に一度ロードされ、実行時には決して変更しない。
// 内容の改訂はデータ資産としてこのファイルの履歴で管理する。

// commonWords は「極めて一般的な英単語」のデノイリストです。
// 上流の生成器が一般語をB1以上と誤タグすることが多いため、
// 申告レベルに関係なく無条件で語彙ハイライトから除外する。
// 機能語・最頻出の動詞/名詞/形容詞・数・曜日/月・身体部位・基本的な衣類/家具など。
var commonWords = newWordSet(
	// 機能語・代名詞・前置詞・接続詞
	"the", "a", "an", "and", "or", "but", "so", "because", "if", "when",
	"while", "although", "though", "that", "this", "these", "those", "it",
	"its", "he", "she", "they", "them", "their", "we", "us", "our", "you",
	"your", "i", "me", "my", "mine", "who", "whom", "whose", "which", "what",
	"where", "why", "how", "to", "of", "in", "on", "at", "by", "for", "with",
	"about", "against", "between", "into", "through", "during", "before",
	"after", "above", "below", "under", "over", "again", "further", "then",
	"once", "here", "there", "all", "any", "both", "each", "few", "more",
	"most", "other", "some", "such", "no", "not", "only", "own", "same",
	"than", "too", "very", "just", "also", "now", "ever", "never", "always",
	"often", "sometimes", "usually", "still", "yet", "already", "almost",
	"enough", "quite", "rather", "really", "perhaps", "maybe", "however",
	"together", "away", "around", "near", "far", "up", "down", "out", "off",
	"from", "as", "like", "until", "since", "without", "within", "among",
	"across", "behind", "beside", "toward", "towards", "upon", "per",

	// 最頻出動詞
	"be", "is", "am", "are", "was", "were", "been", "being", "have", "has",
	"had", "do", "does", "did", "done", "will", "would", "can", "could",
	"shall", "should", "may", "might", "must", "go", "goes", "went", "gone",
	"going", "come", "came", "coming", "get", "got", "give", "gave", "given",
	"take", "took", "taken", "make", "made", "making", "see", "saw", "seen",
	"know", "knew", "known", "think", "thought", "say", "said", "tell",
	"told", "ask", "asked", "answer", "want", "wanted", "need", "needed",
	"like", "liked", "love", "loved", "hate", "help", "helped", "work",
	"worked", "play", "played", "look", "looked", "find", "found", "use",
	"used", "try", "tried", "call", "called", "feel", "felt", "leave",
	"left", "put", "keep", "kept", "let", "begin", "began", "start",
	"started", "stop", "stopped", "show", "showed", "hear", "heard",
	"listen", "watch", "read", "write", "wrote", "written", "speak",
	"spoke", "spoken", "talk", "talked", "walk", "walked", "run", "ran",
	"eat", "ate", "eaten", "drink", "drank", "sleep", "slept", "live",
	"lived", "stay", "stayed", "sit", "sat", "stand", "stood", "open",
	"opened", "close", "closed", "buy", "bought", "sell", "sold", "pay",
	"paid", "meet", "met", "learn", "learned", "teach", "taught", "study",
	"studied", "remember", "forget", "forgot", "understand", "understood",
	"wait", "waited", "move", "moved", "turn", "turned", "bring", "brought",
	"send", "sent", "carry", "carried", "hold", "held", "follow", "followed",
	"change", "changed", "happen", "happened", "become", "became", "seem",
	"seemed", "believe", "believed", "hope", "hoped", "wish", "wished",
	"thank", "thanked", "visit", "visited", "travel", "traveled", "arrive",
	"arrived", "return", "returned", "enjoy", "enjoyed", "smile", "smiled",
	"laugh", "laughed", "cry", "cried", "sing", "sang", "dance", "danced",
	"swim", "swam", "drive", "drove", "driven", "fly", "flew", "flown",
	"fall", "fell", "fallen", "break", "broke", "broken", "cut", "wear",
	"wore", "worn", "win", "won", "lose", "lost", "choose", "chose",
	"chosen", "grow", "grew", "grown", "build", "built", "spend", "spent",
	"cook", "cooked", "clean", "cleaned", "wash", "washed", "rain", "snow",

	// 最頻出名詞
	"time", "year", "years", "day", "days", "week", "weeks", "month",
	"months", "hour", "hours", "minute", "minutes", "second", "seconds",
	"morning", "afternoon", "evening", "night", "today", "tomorrow",
	"yesterday", "people", "person", "man", "men", "woman", "women",
	"child", "children", "boy", "girl", "baby", "family", "parent",
	"parents", "mother", "father", "brother", "sister", "son", "daughter",
	"friend", "friends", "name", "names", "thing", "things", "way", "ways",
	"life", "world", "home", "house", "houses", "room", "rooms", "door",
	"doors", "window", "windows", "school", "schools", "teacher", "student",
	"students", "class", "book", "books", "word", "words", "letter",
	"letters", "number", "numbers", "question", "questions", "story",
	"stories", "place", "places", "city", "cities", "town", "towns",
	"country", "countries", "street", "streets", "road", "roads", "car",
	"cars", "bus", "train", "trains", "plane", "boat", "bike", "water",
	"food", "foods", "bread", "milk", "tea", "coffee", "fruit", "apple",
	"apples", "egg", "eggs", "meat", "fish", "rice", "sugar", "salt",
	"breakfast", "lunch", "dinner", "money", "price", "job", "jobs",
	"office", "shop", "shops", "store", "stores", "market", "doctor",
	"hospital", "police", "weather", "sun", "moon", "star", "stars", "sky",
	"sea", "river", "rivers", "mountain", "mountains", "tree", "trees",
	"flower", "flowers", "garden", "park", "parks", "animal", "animals",
	"dog", "dogs", "cat", "cats", "bird", "birds", "horse", "horses",
	"music", "song", "songs", "game", "games", "sport", "sports", "ball",
	"film", "movie", "movies", "picture", "pictures", "photo", "photos",
	"paper", "pen", "pencil", "phone", "computer", "television", "radio",
	"news", "idea", "ideas", "problem", "problems", "reason", "reasons",
	"part", "parts", "kind", "kinds", "group", "groups", "team", "teams",
	"end", "side", "sides", "top", "bottom", "front", "back", "middle",
	"beginning", "holiday", "holidays", "birthday", "party", "parties",
	"language", "languages", "english", "color", "colors",
	"colour", "colours", "red", "blue", "green", "yellow", "black", "white",
	"brown", "orange", "pink", "grey", "gray", "purple",

	// 数
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "twenty", "thirty", "forty",
	"fifty", "hundred", "thousand", "million", "first", "last", "next",

	// 曜日・月
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
	"sunday", "january", "february", "march", "april", "june", "july",
	"august", "september", "october", "november", "december",

	// 身体部位
	"head", "face", "eye", "eyes", "ear", "ears", "nose", "mouth", "tooth",
	"teeth", "hair", "neck", "shoulder", "shoulders", "arm", "arms", "hand",
	"hands", "finger", "fingers", "leg", "legs", "foot", "feet", "knee",
	"knees", "back", "heart", "body", "blood", "skin",

	// 基本的な衣類・家具・家財
	"clothes", "shirt", "shirts", "dress", "dresses", "skirt", "trousers",
	"pants", "jeans", "coat", "coats", "jacket", "hat", "hats", "shoe",
	"shoes", "sock", "socks", "glasses", "watch", "bag", "bags", "table",
	"tables", "chair", "chairs", "bed", "beds", "sofa", "desk", "desks",
	"lamp", "clock", "mirror", "shelf", "cup", "cups", "glass", "plate",
	"plates", "knife", "fork", "spoon", "key", "keys", "box", "boxes",

	// 最頻出形容詞・副詞
	"good", "bad", "big", "small", "large", "little", "long", "short",
	"tall", "high", "low", "old", "new", "young", "early", "late", "fast",
	"slow", "hot", "cold", "warm", "cool", "easy", "hard", "difficult",
	"simple", "happy", "sad", "angry", "tired", "hungry", "thirsty", "sick",
	"ill", "well", "fine", "nice", "great", "beautiful", "pretty", "ugly",
	"clean", "dirty", "full", "empty", "open", "closed", "right", "wrong",
	"true", "false", "real", "free", "busy", "ready", "sure", "important",
	"interesting", "boring", "funny", "strange", "different", "same",
	"cheap", "expensive", "rich", "poor", "strong", "weak", "heavy",
	"light", "dark", "bright", "quiet", "loud", "safe", "dangerous",
	"careful", "favorite", "favourite", "best", "better", "worse", "worst",
)

// b1MinimumWords はB1以上で教えるのが妥当と分かっている語のアローリストです。
// B2以上の読者には「新出語」として見せない。
var b1MinimumWords = newWordSet(
	"achieve", "achievement", "admit", "advantage", "advertise", "advice",
	"affect", "afford", "ambition", "ancient", "announce", "annual",
	"anxious", "apologize", "appearance", "apply", "appointment",
	"appreciate", "approach", "argument", "arrange", "atmosphere",
	"attempt", "attitude", "attract", "audience", "available", "average",
	"avoid", "aware", "behave", "behaviour", "benefit", "border", "brief",
	"campaign", "candidate", "career", "celebrate", "ceremony", "challenge",
	"charity", "claim", "climate", "colleague", "comment", "communicate",
	"community", "compare", "competition", "complain", "conclusion",
	"condition", "confident", "confirm", "connect", "consider", "consist",
	"contain", "continent", "convenient", "convince", "courage", "create",
	"culture", "curious", "current", "custom", "damage", "decade",
	"decision", "decrease", "definitely", "deliver", "demand", "describe",
	"destroy", "determine", "develop", "disappear", "disappointed",
	"discover", "discuss", "disease", "distance", "edge", "educate",
	"effect", "effective", "efficient", "effort", "employ", "encourage",
	"environment", "equipment", "especially", "essential", "establish",
	"estimate", "event", "evidence", "examine", "excellent", "exchange",
	"exist", "expand", "expect", "experience", "experiment", "explain",
	"explore", "express", "familiar", "feature", "frequent",
	"generation", "generous", "government", "gradually", "huge", "identify",
	"imagine", "immediately", "improve", "include", "increase",
	"independent", "individual", "industry", "influence", "inform",
	"instance", "instead", "intend", "introduce", "invent", "investigate",
	"involve", "knowledge", "local", "locate", "maintain", "major",
	"manage", "measure", "mention", "method", "modern", "narrow",
	"native", "natural", "necessary", "nervous", "notice", "obtain",
	"obvious", "occasion", "occur", "offer", "opinion", "opportunity",
	"oppose", "ordinary", "organize", "original", "particular", "patient",
	"perform", "period", "permanent", "persuade", "popular", "population",
	"position", "possible", "poverty", "predict", "prefer", "prepare",
	"prevent", "previous", "process", "produce", "progress", "promise",
	"protect", "provide", "public", "purpose", "quality", "realize",
	"receive", "recent", "recognize", "recommend", "reduce", "refuse",
	"region", "regular", "relationship", "remain", "remind", "remove",
	"repair", "replace", "require", "research", "respect", "respond",
	"responsible", "result", "reveal", "scenery", "separate", "serious",
	"several", "share", "similar", "situation", "society", "solution",
	"source", "succeed", "success", "suggest", "support", "suppose",
	"surround", "survive", "temporary", "tradition", "typical", "valuable",
	"variety", "vehicle", "weigh", "whole", "wonder",
)

// b2MinimumWords はB2以上で教えるのが妥当な語のアローリストです
var b2MinimumWords = newWordSet(
	"abandon", "absorb", "abstract", "abundant", "accelerate", "accommodate",
	"accumulate", "accurate", "acknowledge", "acquire", "adequate",
	"adjacent", "advocate", "aggregate", "alleviate", "allocate",
	"ambiguous", "amend", "anticipate", "apparent", "arbitrary", "assess",
	"asset", "assume", "assure", "attribute", "authentic", "autonomy",
	"bias", "capacity", "cease", "coherent", "coincide", "collapse",
	"commence", "compensate", "competent", "compile", "complement",
	"comprehensive", "comprise", "conceive", "concurrent", "confine",
	"conform", "consecutive", "consensus", "considerable", "constitute",
	"constrain", "contemplate", "contempt", "contradict", "controversy",
	"convey", "correspond", "cultivate", "cumulative", "deduce", "deficit",
	"deliberate", "denote", "deprive", "derive", "deteriorate", "deviate",
	"devote", "diminish", "discrete", "displace", "dispose", "distinct",
	"distort", "diverse", "domain", "dominate", "elaborate", "eliminate",
	"embark", "embrace", "emerge", "emphasis", "empirical", "endure",
	"enhance", "enormous", "entail", "entity", "evaluate", "evoke",
	"evolve", "exceed", "exclude", "exert", "exploit", "explicit",
	"extract", "facilitate", "feasible", "fluctuate", "formulate",
	"framework", "fundamental", "generate", "genuine", "hypothesis",
	"implement", "implication", "implicit", "impose", "incentive",
	"incorporate", "induce", "inevitable", "infer", "inherent", "inhibit",
	"initiate", "insight", "integrate", "integrity", "interfere",
	"intermediate", "intervene", "intrinsic", "invoke", "legitimate",
	"magnitude", "manipulate", "mediate", "merge", "migrate", "minimize",
	"mitigate", "modify", "mutual", "negligible", "notion", "objective",
	"obscure", "offset", "omit", "parallel", "paradigm", "perceive",
	"persist", "phenomenon", "plausible", "precede", "precise",
	"predominant", "preliminary", "presume", "prevail", "profound",
	"prohibit", "prominent", "prone", "provoke", "pursue", "radical",
	"rational", "refine", "reinforce", "reluctant", "render", "resolve",
	"restore", "restrain", "retain", "rigid", "scope", "simulate",
	"sole", "speculate", "subsequent", "substantial", "subtle", "suffice",
	"supplement", "suppress", "susceptible", "sustain", "terminate",
	"thereby", "transform", "transition", "transmit", "ultimate",
	"undergo", "underlying", "undermine", "uniform", "utilize", "validate",
	"verify", "viable", "vulnerable", "widespread",
)

// c1MinimumWords はC1で初めて「新出」とみなす高度語のアローリストです
var c1MinimumWords = newWordSet(
	"aberration", "abhor", "acquiesce", "admonish", "aesthetic", "alacrity",
	"ameliorate", "anomaly", "antithesis", "apathy", "arduous", "ascertain",
	"assiduous", "audacious", "auspicious", "austere", "belie", "benevolent",
	"blatant", "brevity", "cacophony", "candor", "capricious", "castigate",
	"caustic", "censure", "circumvent", "clandestine", "coalesce",
	"cognizant", "commensurate", "conducive", "conflate", "confluence",
	"congruent", "connotation", "conspicuous", "construe", "copious",
	"corroborate", "covert", "cursory", "deference", "deleterious",
	"delineate", "demean", "denigrate", "deride", "derivative", "despondent",
	"desultory", "dichotomy", "didactic", "diffident", "dilapidated",
	"discern", "disparage", "disparate", "disseminate", "dormant",
	"ebullient", "eclectic", "efficacy", "effrontery", "egregious",
	"elicit", "eloquent", "elucidate", "elusive", "emanate", "emulate",
	"endemic", "enigmatic", "ephemeral", "epitome", "equanimity",
	"equivocal", "erudite", "eschew", "esoteric", "exacerbate", "exemplary",
	"exonerate", "expedite", "extraneous", "extrapolate", "facetious",
	"fastidious", "fatuous", "fervent", "flagrant", "fortuitous",
	"galvanize", "garrulous", "gratuitous", "gregarious", "hackneyed",
	"harbinger", "hegemony", "iconoclast", "idiosyncrasy", "immutable",
	"impasse", "impervious", "impetuous", "inadvertent", "incessant",
	"incipient", "incontrovertible", "indefatigable", "indigenous",
	"indolent", "ineffable", "inexorable", "ingenuous", "innocuous",
	"insidious", "intransigent", "intrepid", "inundate", "irascible",
	"juxtapose", "laconic", "lament", "languish", "latent", "laudable",
	"loquacious", "lucid", "magnanimous", "malleable", "maverick",
	"mellifluous", "mercurial", "meticulous", "mollify", "myopic",
	"nebulous", "nefarious", "nonchalant", "obdurate", "obfuscate",
	"obsequious", "obstinate", "obviate", "onerous", "ostensible",
	"ostracize", "palliative", "panacea", "paragon", "pariah", "parsimony",
	"paucity", "pejorative", "pernicious", "perfunctory", "peruse",
	"pervasive", "placate", "platitude", "pragmatic", "precipitate",
	"preclude", "precocious", "predilection", "prescient", "prevaricate",
	"pristine", "probity", "proclivity", "prodigious", "profligate",
	"promulgate", "propensity", "prosaic", "purport", "quiescent",
	"quintessential", "recalcitrant", "recondite", "relegate", "repudiate",
	"rescind", "reticent", "sagacious", "salient", "sanguine", "scrupulous",
	"serendipity", "soporific", "spurious", "squander", "stoic",
	"subjugate", "substantiate", "surreptitious", "sycophant", "tacit",
	"tangential", "tenacious", "tenuous", "trepidation", "truculent",
	"ubiquitous", "unctuous", "untenable", "vacillate", "vapid",
	"vehement", "venerate", "veracity", "vestige", "vicarious", "vilify",
	"vindicate", "virulent", "vitriolic", "vociferous", "volatile",
	"voracious", "zealous", "zenith",
)

type wordSet map[string]struct{}

func newWordSet(words ...string) wordSet {
	s := make(wordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s wordSet) contains(word string) bool {
	_, ok := s[word]
	return ok
}
