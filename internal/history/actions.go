package history

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yhlin/n8n-consultant/models"
	"github.com/yhlin/n8n-consultant/pkg/db"
	"github.com/yhlin/n8n-consultant/pkg/roadmap"
)

// ListAction prints recent consultations as a table.
func ListAction(c *cli.Context) error {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	database, err := db.Open(cfg.HistoryDB)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer database.Close()

	consultations, err := database.ListConsultations(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list consultations: %w", err)
	}

	if len(consultations) == 0 {
		fmt.Println("No consultations found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-10s %-10s %-8s %-6s %-30s\n",
		"ID", "Created", "Industry", "Dept", "Score", "Diff", "Solution")
	fmt.Println(strings.Repeat("-", 100))

	for _, con := range consultations {
		fmt.Printf("%-6d %-20s %-10s %-10s %-8.2f %-6d %-30s\n",
			con.ID,
			con.CreatedAt.Format("2006-01-02 15:04:05"),
			con.Industry,
			con.Department,
			con.MatchScore,
			con.Difficulty,
			con.SolutionName,
		)
	}

	fmt.Printf("\nTotal: %d consultations\n", len(consultations))
	fmt.Printf("\nTip: Use 'n8n-consultant history show <id>' to replay a full report\n")

	return nil
}

// ShowAction replays the stored report of one consultation.
func ShowAction(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: history show <id>")
	}
	id, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid consultation id %q: %w", c.Args().First(), err)
	}

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	database, err := db.Open(cfg.HistoryDB)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer database.Close()

	rm, err := database.GetRoadmap(id)
	if err != nil {
		return err
	}

	fmt.Println(roadmap.FormatReport(*rm))
	return nil
}
