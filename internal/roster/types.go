package roster

import "slices"

// mlbTeams is the fixed roster used to turn a canonical matchup key back into
// team names. The order matters: the first matching pair wins.
var mlbTeams = [...]string{
	"Baltimore Orioles",
	"Boston Red Sox",
	"New York Yankees",
	"Tampa Bay Rays",
	"Toronto Blue Jays",
	"Chicago White Sox",
	"Cleveland Guardians",
	"Detroit Tigers",
	"Kansas City Royals",
	"Minnesota Twins",
	"Houston Astros",
	"Los Angeles Angels",
	"Oakland Athletics",
	"Seattle Mariners",
	"Texas Rangers",
	"Atlanta Braves",
	"Miami Marlins",
	"New York Mets",
	"Philadelphia Phillies",
	"Washington Nationals",
	"Chicago Cubs",
	"Cincinnati Reds",
	"Milwaukee Brewers",
	"Pittsburgh Pirates",
	"St. Louis Cardinals",
	"Arizona Diamondbacks",
	"Colorado Rockies",
	"Los Angeles Dodgers",
	"San Diego Padres",
	"San Francisco Giants",
}

// Teams returns a copy of the roster in enumeration order.
func Teams() []string {
	return slices.Clone(mlbTeams[:])
}
