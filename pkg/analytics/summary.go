package analytics

import (
	"time"

	"tableflip.dev/writersblock/pkg/journal"
)

// Summary is the dashboard view of a snapshot.
type Summary struct {
	TotalWords         int     `json:"totalWords"`
	TotalPages         int     `json:"totalPages"`
	Entries            int     `json:"entries"`
	Streak             int     `json:"streak"`
	AverageWordsPerDay int     `json:"averageWordsPerDay"`
	WordRecord         int     `json:"wordRecord"`
	AverageGoalTime    string  `json:"averageGoalTime"`
	Rank               string  `json:"rank"`
	NextRank           string  `json:"nextRank"`
	Progress           float64 `json:"progress"`
	WordsUntilNextRank int     `json:"wordsUntilNextRank"`
	Comparison         string  `json:"comparison"`
}

// Summarize computes every statistic once for the entries and goal times.
func Summarize(entries []journal.Entry, goalTimes []time.Time, now time.Time) Summary {
	total := TotalWords(entries)
	rank := Rank(total)
	return Summary{
		TotalWords:         total,
		TotalPages:         TotalPages(total),
		Entries:            len(entries),
		Streak:             Streak(entries, now),
		AverageWordsPerDay: AverageWordsPerDay(entries, now),
		WordRecord:         WordRecord(entries, now.Location()),
		AverageGoalTime:    AverageGoalTime(goalTimes),
		Rank:               rank,
		NextRank:           NextRank(rank),
		Progress:           ProgressToNextRank(total, rank),
		WordsUntilNextRank: WordsUntilNextRank(total, rank),
		Comparison:         Comparison(total),
	}
}
