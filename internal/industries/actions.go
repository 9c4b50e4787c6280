package industries

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yhlin/n8n-consultant/models"
	"github.com/yhlin/n8n-consultant/pkg/industry"
)

// ListAction prints the supported industries with their departments and the
// capability dimensions each department leans on.
func ListAction(c *cli.Context) error {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	adapter, err := industry.Load(cfg.IndustryMapping)
	if err != nil {
		return fmt.Errorf("failed to load industry mapping: %w", err)
	}

	for _, name := range adapter.Industries() {
		fmt.Printf("📂 %s\n", name)
		for _, dept := range adapter.Departments(name) {
			info, ok := adapter.DepartmentInfo(name, dept)
			if !ok {
				continue
			}
			fmt.Printf("   - %s：%s\n", dept, info.Description)
			if len(info.PrimaryDimensions) > 0 {
				fmt.Printf("     主要維度：%s\n", strings.Join(info.PrimaryDimensions, "、"))
			}
		}
		fmt.Println()
	}
	return nil
}
