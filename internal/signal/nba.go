package signal

// Default NBA dictionaries. Order matters: it decides tie order in mention
// lists and which topics survive the MaxTopics cap.

var nbaPeople = []Alias{
	{"LeBron James", "LeBron James"}, {"LeBron", "LeBron James"},
	{"Stephen Curry", "Stephen Curry"}, {"Steph Curry", "Stephen Curry"},
	{"Kevin Durant", "Kevin Durant"}, {"KD", "Kevin Durant"},
	{"Giannis Antetokounmpo", "Giannis Antetokounmpo"}, {"Giannis", "Giannis Antetokounmpo"},
	{"Nikola Jokic", "Nikola Jokic"}, {"Jokic", "Nikola Jokic"},
	{"Joel Embiid", "Joel Embiid"}, {"Embiid", "Joel Embiid"},
	{"Jayson Tatum", "Jayson Tatum"},
	{"Luka Doncic", "Luka Doncic"}, {"Luka", "Luka Doncic"},
	{"James Harden", "James Harden"},
	{"Devin Booker", "Devin Booker"},
	{"Anthony Davis", "Anthony Davis"}, {"AD", "Anthony Davis"},
	{"Victor Wembanyama", "Victor Wembanyama"}, {"Wembanyama", "Victor Wembanyama"}, {"Wemby", "Victor Wembanyama"},
	{"Michael Jordan", "Michael Jordan"}, {"MJ", "Michael Jordan"},
	{"Kobe Bryant", "Kobe Bryant"}, {"Kobe", "Kobe Bryant"},
	{"Shaquille O'Neal", "Shaquille O'Neal"}, {"Shaq", "Shaquille O'Neal"},
}

var nbaTeams = []string{
	"Lakers", "Warriors", "Celtics", "Heat", "Bucks", "Nuggets", "Suns",
	"Mavericks", "Sixers", "76ers", "Knicks", "Clippers", "Kings",
}

var nbaTopics = []string{
	"Trade Rumors", "Trade Deadline", "Free Agency", "Playoffs", "Play-In",
	"NBA Finals", "Draft", "Draft Lottery", "Rookie", "MVP Race", "All-Star",
	"DPOY", "Injury Report", "Comeback", "Suspension", "Beef", "Controversy",
	"Drama", "Game Winner", "Clutch", "Overtime", "Record Breaking", "Historic",
	"Milestone", "Coaching", "Front Office", "Ownership",
	"In-Season Tournament", "NBA Cup", "Team USA",
}

// DefaultDictionary returns the NBA people, team and topic dictionary.
func DefaultDictionary() *Dictionary {
	return NewDictionary(nbaPeople, nbaTeams, nbaTopics)
}
