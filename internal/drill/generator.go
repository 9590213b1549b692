package drill

import (
	"fmt"
	"math/rand"
	"strings"
)

var firstNames = []string{
	"Nikola", "Joel", "Luka", "Giannis", "Shai", "Jayson", "Anthony",
	"Victor", "Devin", "Stephen", "Kevin", "Damian", "Tyrese", "Donovan",
	"Jaylen", "Trae", "Zion", "Paolo", "Jalen", "Anfernee",
}

var lastNames = []string{
	"Jokic", "Embiid", "Doncic", "Antetokounmpo", "Gilgeous-Alexander",
	"Tatum", "Davis", "Wembanyama", "Booker", "Curry", "Durant",
	"Lillard", "Haliburton", "Mitchell", "Brown", "Young", "Williamson",
	"Banchero", "Brunson", "Simons",
}

var teams = []string{
	"DEN", "PHI", "DAL", "MIL", "OKC", "BOS", "LAL", "SA", "PHX", "GSW",
	"NY", "POR", "IND", "CLE", "ATL", "NO", "ORL", "MIN", "MIA", "SAC",
}

var positions = []string{"PG", "SG", "SF", "PF", "C", "PG/SG", "SF/PF"}

// duplicateEvery injects a duplicate row at this interval so the drill
// exercises deduplication.
const duplicateEvery = 10

// GenerateCSV builds a ranking document with n unique players plus
// periodic duplicate rows carrying worse scores.
func GenerateCSV(rng *rand.Rand, n int) ([]byte, []string) {
	var sb strings.Builder
	sb.WriteString("player,team,pos,blend\n")

	players := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	blend := 1.0
	for len(players) < n {
		name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
		if _, ok := seen[name]; ok {
			name = fmt.Sprintf("%s %d", name, len(players))
		}
		seen[name] = struct{}{}
		players = append(players, name)

		team := teams[rng.Intn(len(teams))]
		pos := positions[rng.Intn(len(positions))]
		fmt.Fprintf(&sb, "%s,%s,%s,%.1f\n", name, team, pos, blend)

		if len(players)%duplicateEvery == 0 {
			fmt.Fprintf(&sb, "%s,%s,%s,%.1f\n", name, team, pos, blend+100)
		}
		blend += 0.5 + rng.Float64()
	}
	return []byte(sb.String()), players
}
