package names

// tokenAliases maps single normalized tokens to their expanded spelling.
// Applied after normalization, token by token.
var tokenAliases = map[string]string{
	"utd":   "united",
	"sg":    "super giant",
	"intl":  "international",
	"atl":   "atletico",
	"ath":   "athletic",
	"dep":   "deportivo",
	"gladbach": "monchengladbach",
	"cty":   "city",
}

// canonicalTeams maps the normalized form of a known team spelling to the
// canonical name used for comparison. Lookups happen on Normalize(raw), so
// punctuation and case differences collapse onto the same key.
var canonicalTeams = map[string]string{
	"man utd":           "manchester united",
	"man united":        "manchester united",
	"manchester utd":    "manchester united",
	"man city":          "manchester city",
	"spurs":             "tottenham hotspur",
	"tottenham":         "tottenham hotspur",
	"wolves":            "wolverhampton wanderers",
	"psg":               "paris saint germain",
	"paris sg":          "paris saint germain",
	"inter":             "inter milan",
	"internazionale":    "inter milan",
	"barca":             "barcelona",
	"fc barcelona":      "barcelona",
	"atleti":            "atletico madrid",
	"atletico de madrid": "atletico madrid",
	"bayern":            "bayern munich",
	"fc bayern munchen": "bayern munich",
	"dortmund":          "borussia dortmund",
	"bvb":               "borussia dortmund",
	"leverkusen":        "bayer leverkusen",
	"newcastle":         "newcastle united",
	"west ham":          "west ham united",
	"forest":            "nottingham forest",
	"nottm forest":      "nottingham forest",
	"sheff utd":         "sheffield united",
	"leeds":             "leeds united",
	"ac milan":          "milan",
}

// canonicalLeagues maps the normalized form of a known league spelling to the
// canonical competition name.
var canonicalLeagues = map[string]string{
	"epl":                    "english premier league",
	"eng pr":                 "english premier league",
	"premier league":         "english premier league",
	"english premier":        "english premier league",
	"uefa cl":                "champions league",
	"ucl":                    "champions league",
	"uefa champions league":  "champions league",
	"uefa el":                "europa league",
	"uefa europa league":     "europa league",
	"la liga":                "spanish la liga",
	"laliga":                 "spanish la liga",
	"spa d1":                 "spanish la liga",
	"serie a":                "italian serie a",
	"ita d1":                 "italian serie a",
	"bundesliga":             "german bundesliga",
	"ger d1":                 "german bundesliga",
	"ligue 1":                "french ligue 1",
	"fra d1":                 "french ligue 1",
	"efl championship":       "english championship",
	"eng ch":                 "english championship",
}
