package analytics

// MaxRankReached is returned by NextRank past the top of the ladder.
const MaxRankReached = "Max rank reached"

// Tier is one rung of the rank ladder, unlocked at Threshold total words.
type Tier struct {
	Threshold int    `json:"threshold"`
	Name      string `json:"name"`
}

// Ranks is the ordered ladder. Thresholds strictly increase.
var Ranks = []Tier{
	{0, "Word Dabbler"},
	{500, "Novice Scribe"},
	{1000, "Adept Penman"},
	{1500, "Inkling"},
	{2000, "Quill Rookie"},
	{2500, "Page Apprentice"},
	{3000, "Wordsmith in Training"},
	{3500, "Prose Pupil"},
	{4000, "Paragraph Novice"},
	{4500, "Script Explorer"},
	{5000, "Sentence Seeker"},
	{6000, "Journeyman of Ink"},
	{7500, "Verse Weaver"},
	{9000, "Tale Teller"},
	{10000, "Chapter Crafter"},
	{12500, "Narrative Navigator"},
	{15000, "Manuscript Maven"},
	{17500, "Syntax Scholar"},
	{20000, "Grammar Guardian"},
	{22500, "Plot Architect"},
	{25000, "Poetry Pioneer"},
	{30000, "Story Shaper"},
	{35000, "Text Curator"},
	{40000, "Prose Philosopher"},
	{45000, "Plot Magician"},
	{50000, "Narrative Alchemist"},
	{55000, "Epic Scribe"},
	{60000, "Literary Luminary"},
	{65000, "Verse Virtuoso"},
	{70000, "Story Strategist"},
	{75000, "Paragraph Prophet"},
	{80000, "Master of Manuscripts"},
	{85000, "Plot Sage"},
	{90000, "Syntax Sorcerer"},
	{95000, "Legend Crafter"},
	{100000, "Virtuoso of Verse"},
	{125000, "Word Weaver"},
	{150000, "Tome Tactician"},
	{175000, "Epic Composer"},
	{200000, "Text Titan"},
	{225000, "Guardian of Grammar"},
	{250000, "Sentinel of Stories"},
	{275000, "Master of Rhetoric"},
	{300000, "Narrative Nomad"},
	{350000, "Archon of Articulation"},
	{400000, "Oracle of Oratory"},
	{450000, "Syntax Sovereign"},
	{500000, "Scribe Supreme"},
	{600000, "Epic Emissary"},
	{800000, "Legendary Lexicographer"},
	{1000000, "Emissary of Eloquence"},
}

func rankIndex(name string) int {
	for i := range Ranks {
		if Ranks[i].Name == name {
			return i
		}
	}
	return -1
}

// TierFor returns the highest tier whose threshold is at most totalWords.
// Negative totals get the lowest tier.
func TierFor(totalWords int) Tier {
	if len(Ranks) == 0 {
		return Tier{}
	}
	for i := len(Ranks) - 1; i >= 0; i-- {
		if Ranks[i].Threshold <= totalWords {
			return Ranks[i]
		}
	}
	return Ranks[0]
}

// Rank names the tier reached with totalWords.
func Rank(totalWords int) string {
	return TierFor(totalWords).Name
}

// NextRank returns the rank after name, or MaxRankReached when name is the
// last rank or unknown.
func NextRank(name string) string {
	i := rankIndex(name)
	if i < 0 || i == len(Ranks)-1 {
		return MaxRankReached
	}
	return Ranks[i+1].Name
}

// ProgressToNextRank returns how far totalWords is between the threshold of
// rank and the next one, clamped to [0,1]. It is 1 for the last or an
// unknown rank.
func ProgressToNextRank(totalWords int, rank string) float64 {
	i := rankIndex(rank)
	if i < 0 || i == len(Ranks)-1 {
		return 1
	}
	cur, next := Ranks[i].Threshold, Ranks[i+1].Threshold
	p := float64(totalWords-cur) / float64(next-cur)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// WordsUntilNextRank is the number of words still needed for the rank after
// rank. It is 0 at the top of the ladder.
func WordsUntilNextRank(totalWords int, rank string) int {
	i := rankIndex(rank)
	if i < 0 || i == len(Ranks)-1 {
		return 0
	}
	if n := Ranks[i+1].Threshold - totalWords; n > 0 {
		return n
	}
	return 0
}
