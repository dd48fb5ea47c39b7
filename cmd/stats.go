package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mathmentor/mathmentor/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent assessments and topic mastery",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		// Operator view across all learners; raw SQL keeps the repos
		// scoped to single-learner access.
		rows, err := s.DB().Query(`
			SELECT topic, score_percentage, total_questions, completed_at
			FROM assessment_sessions
			ORDER BY completed_at DESC
			LIMIT 20`)
		if err != nil {
			return fmt.Errorf("query assessments: %w", err)
		}
		defer rows.Close()

		fmt.Printf("%-16s  %-6s  %-10s  %s\n", "Topic", "Score", "Questions", "Completed")
		fmt.Println(strings.Repeat("─", 60))

		any := false
		for rows.Next() {
			var topic, completedAt string
			var score, total int
			if err := rows.Scan(&topic, &score, &total, &completedAt); err != nil {
				return fmt.Errorf("scan assessment: %w", err)
			}
			fmt.Printf("%-16s  %5d%%  %-10d  %s\n", topic, score, total, completedAt)
			any = true
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate assessments: %w", err)
		}
		if !any {
			fmt.Println("No assessments recorded yet.")
		}

		masteryRows, err := s.DB().Query(`
			SELECT topic, SUM(total_questions_attempted), SUM(correct_answers)
			FROM topic_progresses
			GROUP BY topic
			ORDER BY topic`)
		if err != nil {
			return fmt.Errorf("query mastery: %w", err)
		}
		defer masteryRows.Close()

		fmt.Println()
		fmt.Printf("%-16s  %-10s  %-8s  %s\n", "Topic", "Attempted", "Correct", "Mastery")
		fmt.Println(strings.Repeat("─", 50))

		for masteryRows.Next() {
			var topic string
			var attempted, correct int
			if err := masteryRows.Scan(&topic, &attempted, &correct); err != nil {
				return fmt.Errorf("scan mastery: %w", err)
			}
			mastery := 0
			if attempted > 0 {
				mastery = correct * 100 / attempted
			}
			fmt.Printf("%-16s  %-10d  %-8d  %d%%\n", topic, attempted, correct, mastery)
		}
		return masteryRows.Err()
	},
}
