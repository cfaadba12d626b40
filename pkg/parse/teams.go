package parse

import "strings"

// TeamGroup is one league's slice of the official team list, used by
// pickers and the teams API endpoint.
type TeamGroup struct {
	League string   `json:"league"`
	Teams  []string `json:"teams"`
}

// teamAliases maps lowercase team-name variants (abbreviations, nicknames,
// Greek transliterations) to the canonical club name. The table is data
// owned by this package; parsers and handlers only go through
// NormalizeTeamName.
var teamAliases = map[string]string{
	// Germany: Bundesliga
	"fc bayern münchen": "FC Bayern Munich", "bayern munich": "FC Bayern Munich",
	"bayern münchen": "FC Bayern Munich", "bayern": "FC Bayern Munich",
	"fcb": "FC Bayern Munich", "μπάγερν μοναχου": "FC Bayern Munich",
	"bayer 04 leverkusen": "Bayer 04 Leverkusen", "bayer leverkusen": "Bayer 04 Leverkusen",
	"leverkusen": "Bayer 04 Leverkusen", "werkself": "Bayer 04 Leverkusen",
	"μπάγερ λεβερκούζεν": "Bayer 04 Leverkusen",
	"vfb stuttgart":      "VfB Stuttgart", "stuttgart": "VfB Stuttgart",
	"die schwaben": "VfB Stuttgart", "στουτγκάρδη": "VfB Stuttgart",
	"rb leipzig": "RB Leipzig", "leipzig": "RB Leipzig",
	"die roten bullen": "RB Leipzig", "λάιπτσιχ": "RB Leipzig",
	"borussia dortmund": "Borussia Dortmund", "dortmund": "Borussia Dortmund",
	"bvb": "Borussia Dortmund", "bvb 09": "Borussia Dortmund", "ντόρτμουντ": "Borussia Dortmund",
	"eintracht frankfurt": "Eintracht Frankfurt", "frankfurt": "Eintracht Frankfurt",
	"sge": "Eintracht Frankfurt", "die adler": "Eintracht Frankfurt",
	"άιντραχτ φρανκφούρτης": "Eintracht Frankfurt",
	"tsg 1899 hoffenheim":   "TSG Hoffenheim", "tsg hoffenheim": "TSG Hoffenheim",
	"hoffenheim": "TSG Hoffenheim", "χόφενχαϊμ": "TSG Hoffenheim",
	"1. fc heidenheim": "1. FC Heidenheim", "heidenheim": "1. FC Heidenheim",
	"fch": "1. FC Heidenheim", "χάιντενχαϊμ": "1. FC Heidenheim",
	"sv werder bremen": "SV Werder Bremen", "werder bremen": "SV Werder Bremen",
	"bremen": "SV Werder Bremen", "svw": "SV Werder Bremen", "βέρντερ βρέμης": "SV Werder Bremen",
	"sc freiburg": "SC Freiburg", "freiburg": "SC Freiburg",
	"scf": "SC Freiburg", "φράιμπουργκ": "SC Freiburg",
	"fc augsburg": "FC Augsburg", "augsburg": "FC Augsburg",
	"fca": "FC Augsburg", "άουγκσμπουργκ": "FC Augsburg",
	"vfl wolfsburg": "VfL Wolfsburg", "wolfsburg": "VfL Wolfsburg",
	"die wölfe": "VfL Wolfsburg", "βόλφσμπουργκ": "VfL Wolfsburg",
	"fsv mainz 05": "FSV Mainz 05", "mainz 05": "FSV Mainz 05",
	"mainz": "FSV Mainz 05", "μάιντς": "FSV Mainz 05",
	"borussia mönchengladbach": "Borussia Mönchengladbach",
	"mönchengladbach":          "Borussia Mönchengladbach", "gladbach": "Borussia Mönchengladbach",
	"bmg": "Borussia Mönchengladbach", "γκλάντμπαχ": "Borussia Mönchengladbach",
	"1. fc union berlin": "1. FC Union Berlin", "union berlin": "1. FC Union Berlin",
	"die eisernen": "1. FC Union Berlin", "ούνιον βερολίνου": "1. FC Union Berlin",
	"vfl bochum": "VfL Bochum", "bochum": "VfL Bochum",
	"vfl bochum 1848": "VfL Bochum", "μπόχουμ": "VfL Bochum",
	"fc st. pauli": "FC St. Pauli", "st. pauli": "FC St. Pauli",
	"kiezkicker": "FC St. Pauli", "σανκτ πάουλι": "FC St. Pauli",
	"holstein kiel": "Holstein Kiel", "kiel": "Holstein Kiel",
	"die störche": "Holstein Kiel", "χόλσταϊν κίελου": "Holstein Kiel",
	"fc schalke 04": "FC Schalke 04", "schalke 04": "FC Schalke 04",
	"schalke": "FC Schalke 04", "s04": "FC Schalke 04", "σάλκε": "FC Schalke 04",
	"hertha bsc": "Hertha Berlin", "hertha berlin": "Hertha Berlin",
	"hertha": "Hertha Berlin", "χέρτα βερολίνου": "Hertha Berlin",
	"1. fc köln": "1. FC Köln", "fc köln": "1. FC Köln", "köln": "1. FC Köln",
	"cologne": "1. FC Köln", "κελν": "1. FC Köln",

	// England: Premier League
	"arsenal": "Arsenal FC", "arsenal fc": "Arsenal FC", "the gunners": "Arsenal FC",
	"άρσεναλ":   "Arsenal FC",
	"liverpool": "Liverpool FC", "liverpool fc": "Liverpool FC", "lfc": "Liverpool FC",
	"λίβερπουλ":       "Liverpool FC",
	"manchester city": "Manchester City FC", "man city": "Manchester City FC",
	"mcfc": "Manchester City FC", "μάντσεστερ σίτι": "Manchester City FC",
	"manchester united": "Manchester United FC", "man united": "Manchester United FC",
	"man utd": "Manchester United FC", "mufc": "Manchester United FC",
	"μάντσεστερ γιουνάιτεντ": "Manchester United FC",
	"chelsea":                "Chelsea FC", "chelsea fc": "Chelsea FC", "cfc": "Chelsea FC",
	"τσέλσι":    "Chelsea FC",
	"tottenham": "Tottenham Hotspur FC", "spurs": "Tottenham Hotspur FC",
	"tottenham hotspur": "Tottenham Hotspur FC", "τότεναμ": "Tottenham Hotspur FC",
	"newcastle": "Newcastle United FC", "newcastle united": "Newcastle United FC",
	"nufc": "Newcastle United FC", "νιουκάστλ": "Newcastle United FC",
	"west ham": "West Ham United FC", "west ham united": "West Ham United FC",
	"γουέστ χαμ":  "West Ham United FC",
	"aston villa": "Aston Villa FC", "villa": "Aston Villa FC", "άστον βίλα": "Aston Villa FC",
	"everton": "Everton FC", "everton fc": "Everton FC", "έβερτον": "Everton FC",

	// Spain: La Liga
	"real madrid": "Real Madrid CF", "real madrid cf": "Real Madrid CF",
	"los blancos": "Real Madrid CF", "ρεάλ μαδρίτης": "Real Madrid CF",
	"barcelona": "FC Barcelona", "fc barcelona": "FC Barcelona", "barca": "FC Barcelona",
	"barça": "FC Barcelona", "μπαρτσελόνα": "FC Barcelona",
	"atletico madrid": "Club Atlético de Madrid", "atlético madrid": "Club Atlético de Madrid",
	"atleti": "Club Atlético de Madrid", "ατλέτικο μαδρίτης": "Club Atlético de Madrid",
	"sevilla": "Sevilla FC", "sevilla fc": "Sevilla FC", "σεβίλλη": "Sevilla FC",
	"valencia": "Valencia CF", "valencia cf": "Valencia CF", "βαλένθια": "Valencia CF",
	"athletic bilbao": "Athletic Club", "athletic club": "Athletic Club",
	"real sociedad": "Real Sociedad de Fútbol", "la real": "Real Sociedad de Fútbol",

	// Italy: Serie A
	"ac milan": "AC Milan", "milan": "AC Milan", "μίλαν": "AC Milan",
	"inter": "FC Internazionale Milano", "inter milan": "FC Internazionale Milano",
	"internazionale": "FC Internazionale Milano", "ίντερ": "FC Internazionale Milano",
	"juventus": "Juventus FC", "juve": "Juventus FC", "γιουβέντους": "Juventus FC",
	"napoli": "SSC Napoli", "ssc napoli": "SSC Napoli", "νάπολι": "SSC Napoli",
	"roma": "AS Roma", "as roma": "AS Roma", "ρόμα": "AS Roma",
	"lazio": "SS Lazio", "ss lazio": "SS Lazio", "λάτσιο": "SS Lazio",
	"atalanta": "Atalanta BC", "atalanta bc": "Atalanta BC", "αταλάντα": "Atalanta BC",
	"fiorentina": "ACF Fiorentina", "acf fiorentina": "ACF Fiorentina",

	// France: Ligue 1
	"psg": "Paris Saint-Germain FC", "paris saint-germain": "Paris Saint-Germain FC",
	"paris sg": "Paris Saint-Germain FC", "παρί": "Paris Saint-Germain FC",
	"marseille": "Olympique de Marseille", "olympique marseille": "Olympique de Marseille",
	"om":   "Olympique de Marseille", "μαρσέιγ": "Olympique de Marseille",
	"lyon": "Olympique Lyonnais", "olympique lyonnais": "Olympique Lyonnais",
	"ol":     "Olympique Lyonnais", "λυών": "Olympique Lyonnais",
	"monaco": "AS Monaco FC", "as monaco": "AS Monaco FC", "μονακό": "AS Monaco FC",
	"lille": "LOSC Lille", "losc": "LOSC Lille",

	// Portugal / Netherlands
	"benfica": "SL Benfica", "sl benfica": "SL Benfica", "μπενφίκα": "SL Benfica",
	"porto": "FC Porto", "fc porto": "FC Porto", "πόρτο": "FC Porto",
	"sporting": "Sporting CP", "sporting lisbon": "Sporting CP", "sporting cp": "Sporting CP",
	"ajax": "AFC Ajax", "afc ajax": "AFC Ajax", "άγιαξ": "AFC Ajax",
	"psv": "PSV Eindhoven", "psv eindhoven": "PSV Eindhoven", "αϊντχόφεν": "PSV Eindhoven",
	"feyenoord": "Feyenoord Rotterdam", "φέγενορντ": "Feyenoord Rotterdam",

	// Austria
	"rb salzburg": "RB Salzburg", "red bull salzburg": "RB Salzburg",
	"salzburg": "RB Salzburg", "fc salzburg": "RB Salzburg", "σάλτσμπουργκ": "RB Salzburg",

	// Special cases
	"multiple teams": "Multiple Teams", "various teams": "Multiple Teams",
	"various": "Multiple Teams",
}

// NormalizeTeamName canonicalizes a team name through the alias table.
// Unknown input is returned trimmed but otherwise unchanged; the function
// never fails.
func NormalizeTeamName(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := teamAliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// OfficialTeams returns the grouped official team list, one group per
// league, for selection UIs. The returned slice is freshly allocated.
func OfficialTeams() []TeamGroup {
	out := make([]TeamGroup, len(officialTeams))
	copy(out, officialTeams)
	return out
}

var officialTeams = []TeamGroup{
	{
		League: "Germany: Bundesliga",
		Teams: []string{
			"1. FC Heidenheim", "1. FC Köln", "1. FC Union Berlin", "Bayer 04 Leverkusen",
			"Borussia Dortmund", "Borussia Mönchengladbach", "Eintracht Frankfurt", "FC Augsburg",
			"FC Bayern Munich", "FC Schalke 04", "FC St. Pauli", "FSV Mainz 05", "Hertha Berlin",
			"Holstein Kiel", "RB Leipzig", "SC Freiburg", "SV Werder Bremen", "TSG Hoffenheim",
			"VfB Stuttgart", "VfL Bochum", "VfL Wolfsburg",
		},
	},
	{
		League: "England: Premier League",
		Teams: []string{
			"AFC Bournemouth", "Arsenal FC", "Aston Villa FC", "Brentford FC",
			"Brighton & Hove Albion FC", "Chelsea FC", "Crystal Palace FC", "Everton FC",
			"Fulham FC", "Ipswich Town FC", "Leicester City FC", "Liverpool FC",
			"Manchester City FC", "Manchester United FC", "Newcastle United FC",
			"Nottingham Forest FC", "Southampton FC", "Tottenham Hotspur FC",
			"West Ham United FC", "Wolverhampton Wanderers FC",
		},
	},
	{
		League: "Spain: La Liga",
		Teams: []string{
			"Athletic Club", "CA Osasuna", "CD Leganés", "Club Atlético de Madrid",
			"Deportivo Alavés", "FC Barcelona", "Getafe CF", "Girona FC", "RCD Espanyol",
			"RCD Mallorca", "RC Celta de Vigo", "Rayo Vallecano", "Real Betis Balompié",
			"Real Madrid CF", "Real Sociedad de Fútbol", "Real Valladolid CF", "Sevilla FC",
			"UD Las Palmas", "Valencia CF", "Villarreal CF",
		},
	},
	{
		League: "Italy: Serie A",
		Teams: []string{
			"AC Milan", "AC Monza", "ACF Fiorentina", "AS Roma", "Atalanta BC",
			"Bologna FC 1909", "Cagliari Calcio", "Como 1907", "Empoli FC",
			"FC Internazionale Milano", "Genoa CFC", "Hellas Verona FC", "Juventus FC",
			"Parma Calcio 1913", "SS Lazio", "SSC Napoli", "Torino FC", "US Lecce",
			"Udinese Calcio", "Venezia FC",
		},
	},
	{
		League: "France: Ligue 1",
		Teams: []string{
			"AJ Auxerre", "AS Monaco FC", "AS Saint-Étienne", "Angers SCO", "FC Nantes",
			"LOSC Lille", "Le Havre AC", "Montpellier Hérault SC", "OGC Nice",
			"Olympique Lyonnais", "Olympique de Marseille", "Paris Saint-Germain FC",
			"RC Lens", "RC Strasbourg Alsace", "Stade Brestois 29", "Stade Rennais FC",
			"Stade de Reims", "Toulouse FC",
		},
	},
	{
		League: "Portugal: Primeira Liga",
		Teams: []string{
			"AVS Futebol SAD", "Boavista FC", "CD Nacional", "CD Santa Clara", "Casa Pia AC",
			"Estoril Praia", "FC Arouca", "FC Famalicão", "FC Porto", "GD Estrela da Amadora",
			"Gil Vicente FC", "Moreirense FC", "Rio Ave FC", "SC Braga", "SC Farense",
			"SL Benfica", "Sporting CP", "Vitória SC",
		},
	},
	{
		League: "Netherlands: Eredivisie",
		Teams: []string{
			"AFC Ajax", "AZ Alkmaar", "Almere City FC", "FC Groningen", "FC Twente",
			"FC Utrecht", "Feyenoord Rotterdam", "Fortuna Sittard", "Go Ahead Eagles",
			"Heracles Almelo", "NAC Breda", "NEC Nijmegen", "PEC Zwolle", "PSV Eindhoven",
			"RKC Waalwijk", "Sparta Rotterdam", "sc Heerenveen", "Willem II",
		},
	},
	{
		League: "Turkey: Süper Lig",
		Teams: []string{
			"Adana Demirspor", "Alanyaspor", "Antalyaspor", "Beşiktaş JK", "Bodrum FK",
			"Çaykur Rizespor", "Eyüpspor", "Fenerbahçe SK", "Galatasaray SK",
			"Gaziantep FK", "Göztepe SK", "Hatayspor", "İstanbul Başakşehir FK",
			"Kasımpaşa SK", "Kayserispor", "Konyaspor", "Samsunspor", "Sivasspor",
			"Trabzonspor",
		},
	},
	{
		League: "Brazil: Campeonato Brasileiro Série A",
		Teams: []string{
			"Athletico Paranaense", "Atlético Goianiense", "Atlético Mineiro",
			"Botafogo de Futebol e Regatas", "CR Flamengo", "Criciúma EC", "Cruzeiro EC",
			"Cuiabá EC", "EC Bahia", "EC Juventude", "EC Vitória", "Fluminense FC",
			"Fortaleza EC", "Grêmio Foot-Ball Porto Alegrense", "Red Bull Bragantino",
			"SC Corinthians Paulista", "SC Internacional", "SE Palmeiras", "São Paulo FC",
			"CR Vasco da Gama",
		},
	},
	{
		League: "USA: Major League Soccer (MLS)",
		Teams: []string{
			"Atlanta United FC", "Austin FC", "CF Montréal", "Charlotte FC",
			"Chicago Fire FC", "Colorado Rapids", "Columbus Crew", "D.C. United",
			"FC Cincinnati", "FC Dallas", "Houston Dynamo FC", "Inter Miami CF",
			"LA Galaxy", "Los Angeles FC", "Minnesota United FC", "Nashville SC",
			"New England Revolution", "New York City FC", "New York Red Bulls",
			"Orlando City SC", "Philadelphia Union", "Portland Timbers", "Real Salt Lake",
			"San Diego FC", "San Jose Earthquakes", "Seattle Sounders FC",
			"Sporting Kansas City", "St. Louis City SC", "Toronto FC", "Vancouver Whitecaps FC",
		},
	},
	{
		League: "Saudi Arabia: Saudi Professional League",
		Teams: []string{
			"Al-Ahli Saudi FC", "Al-Ettifaq FC", "Al-Fateh SC", "Al-Fayha FC",
			"Al-Hilal SFC", "Al-Ittihad Club", "Al-Khaleej FC", "Al-Kholood Club",
			"Al-Nassr FC", "Al-Okhdood Club", "Al-Orobah FC", "Al-Qadsiah FC",
			"Al-Raed SFC", "Al-Riyadh SC", "Al-Shabab FC", "Al-Taawoun FC",
			"Al-Wehda FC", "Damac FC",
		},
	},
	{
		League: "Argentina: Primera División",
		Teams: []string{
			"Argentinos Juniors", "Boca Juniors", "Central Córdoba", "Club Atlético Banfield",
			"Club Atlético Belgrano", "Club Atlético Huracán", "Club Atlético Lanús",
			"Club Atlético Platense", "Club Atlético Sarmiento", "Club Atlético Tigre",
			"Club Atlético Tucumán", "Defensa y Justicia", "Deportivo Riestra",
			"Estudiantes de La Plata", "Gimnasia y Esgrima La Plata", "Godoy Cruz Antonio Tomba",
			"Independiente", "Independiente Rivadavia", "Instituto ACC", "Newell's Old Boys",
			"Racing Club", "River Plate", "Rosario Central", "San Lorenzo de Almagro",
			"Talleres de Córdoba", "Unión de Santa Fe", "Vélez Sarsfield",
		},
	},
	{
		League: "Mexico: Liga MX",
		Teams: []string{
			"Atlas FC", "Atlético San Luis", "CF Monterrey", "CF Pachuca", "CD Guadalajara",
			"Club América", "Club León", "Club Necaxa", "Club Tijuana", "Cruz Azul",
			"Deportivo Toluca FC", "FC Juárez", "Mazatlán FC", "Puebla FC", "Pumas UNAM",
			"Querétaro FC", "Santos Laguna", "Tigres UANL",
		},
	},
	{
		League: "Other",
		Teams:  []string{"Multiple Teams", "RB Salzburg"},
	},
}
