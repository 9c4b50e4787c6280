package consult

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/yhlin/n8n-consultant/models"
	"github.com/yhlin/n8n-consultant/pkg/community"
	"github.com/yhlin/n8n-consultant/pkg/db"
	"github.com/yhlin/n8n-consultant/pkg/industry"
	"github.com/yhlin/n8n-consultant/pkg/roadmap"
	"github.com/yhlin/n8n-consultant/pkg/textutil"
)

const banner = `
╔══════════════════════════════════════════════════════════════╗
║                                                              ║
║         🤖  n8n AI 導入顧問系統                              ║
║         AI Adoption Consultant                               ║
║                                                              ║
╚══════════════════════════════════════════════════════════════╝
`

const minPainRunes = 4

func ConsultAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	pipeline, err := NewPipeline(cfg)
	if err != nil {
		return err
	}

	industryName := strings.TrimSpace(c.String("industry"))
	department := strings.TrimSpace(c.String("department"))
	pain := strings.TrimSpace(c.String("pain"))

	interactive := pain == ""
	reader := bufio.NewReader(os.Stdin)

	if interactive {
		fmt.Print(banner, "\n")
		industryName = selectIndustry(reader, pipeline.Adapter)
		fmt.Printf("\n   ✅ 已選擇產業：%s\n", industryName)

		department = selectDepartment(reader, pipeline.Adapter, industryName)
		if department != "" {
			fmt.Printf("   ✅ 已選擇部門：%s\n", department)
		} else {
			fmt.Println("   ✅ 分析範圍：全部門")
		}

		pain = promptPainPoint(reader)
		fmt.Println("\n⏳ 正在分析，請稍候...")
	}
	// An empty --industry is valid: unknown scopes fall back to equal
	// dimension weights and lexicon defaults downstream.

	logger.Info("Generating roadmap", "industry", industryName, "department", department)
	rm := pipeline.Assembler.Generate(industryName, department, pain)

	if c.Bool("community") {
		rm.Community = fetchCommunity(c.Context, cfg, logger, rm)
	}

	if err := printRoadmap(rm, c.String("format")); err != nil {
		return err
	}

	if !c.Bool("no-save") {
		saveHistory(cfg, logger, rm)
	}

	if interactive {
		fmt.Print("📥 是否匯出 JSON 格式的路徑圖？(y/n) ")
		answer, _ := reader.ReadString('\n')
		if strings.EqualFold(strings.TrimSpace(answer), "y") {
			if err := exportRoadmap(rm); err != nil {
				return err
			}
		}
		fmt.Println("\n👋 感謝使用 AI 導入顧問系統！祝您的 AI 轉型之路順利！")
	} else if c.Bool("export") {
		if err := exportRoadmap(rm); err != nil {
			return err
		}
	}

	return nil
}

// selectIndustry shows a numbered menu of known industries, with [0] for a
// free-form name. Loops until a valid choice is made.
func selectIndustry(reader *bufio.Reader, adapter *industry.Adapter) string {
	industries := adapter.Industries()
	fmt.Println("\n📂 請選擇您的產業：")
	for i, name := range industries {
		fmt.Printf("   [%d] %s\n", i+1, name)
	}
	fmt.Println("   [0] 自行輸入其他產業")

	for {
		fmt.Print("\n👉 請輸入編號：")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return industries[0]
		}
		choice := strings.TrimSpace(line)
		if choice == "0" {
			fmt.Print("   請輸入產業名稱：")
			custom, _ := reader.ReadString('\n')
			if name := strings.TrimSpace(custom); name != "" {
				return name
			}
		} else if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(industries) {
			return industries[n-1]
		}
		fmt.Println("   ⚠️  輸入無效，請重新選擇。")
	}
}

// selectDepartment shows the department menu of an industry, with [0] for a
// whole-company analysis. Unknown industries skip the menu entirely.
func selectDepartment(reader *bufio.Reader, adapter *industry.Adapter, industryName string) string {
	departments := adapter.Departments(industryName)
	if len(departments) == 0 {
		fmt.Printf("\n   ℹ️  產業「%s」不在預設對應表中，將使用均等維度權重。\n", industryName)
		return ""
	}

	fmt.Printf("\n📋 「%s」產業的部門：\n", industryName)
	for i, name := range departments {
		fmt.Printf("   [%d] %s\n", i+1, name)
	}
	fmt.Println("   [0] 不指定 (全部門分析)")

	for {
		fmt.Print("\n👉 請輸入編號：")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return ""
		}
		choice := strings.TrimSpace(line)
		if choice == "0" {
			return ""
		}
		if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(departments) {
			return departments[n-1]
		}
		fmt.Println("   ⚠️  輸入無效，請重新選擇。")
	}
}

func promptPainPoint(reader *bufio.Reader) string {
	fmt.Println("\n💬 請描述您目前面臨的業務痛點：")
	fmt.Println("   (例如：客戶流失率太高、報表產出太慢、品質檢測靠人工...)")
	for {
		fmt.Print("\n👉 痛點描述：")
		line, err := reader.ReadString('\n')
		query := strings.TrimSpace(line)
		if textutil.RuneLen(query) >= minPainRunes {
			return query
		}
		if err != nil && line == "" {
			return query
		}
		fmt.Println("   ⚠️  描述太短，請至少輸入 4 個字。")
	}
}

// fetchCommunity augments a roadmap with public n8n templates. Any failure is
// logged and yields an empty slice, never an error.
func fetchCommunity(ctx context.Context, cfg *models.Config, logger *slog.Logger, rm models.Roadmap) []models.CommunityWorkflow {
	cache, err := community.NewCache(cfg.CommunityCache, cfg.CommunityTTL)
	if err != nil {
		logger.Warn("Community cache unavailable, continuing without it", "error", err)
	}
	client := community.NewClient(cfg.CommunityBaseURL, cache, logger)
	return client.SearchAndEnrich(ctx, rm.Signals.Keywords, rm.Industry, cfg.TopN)
}

func printRoadmap(rm models.Roadmap, format string) error {
	switch format {
	case "", "text":
		fmt.Println(roadmap.FormatReport(rm))
	case "json":
		data, err := json.MarshalIndent(rm, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode roadmap: %w", err)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(rm)
		if err != nil {
			return fmt.Errorf("failed to encode roadmap: %w", err)
		}
		fmt.Print(string(data))
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
	return nil
}

func exportRoadmap(rm models.Roadmap) error {
	filename := fmt.Sprintf("roadmap_%s_%s.json", rm.Industry, time.Now().Format("20060102_150405"))
	data, err := json.MarshalIndent(rm, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode roadmap: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	fmt.Printf("\n   ✅ 已匯出至：%s\n", filename)
	return nil
}

// saveHistory records the consult in the history database. History is a
// convenience, so failures only warn.
func saveHistory(cfg *models.Config, logger *slog.Logger, rm models.Roadmap) {
	database, err := db.Open(cfg.HistoryDB)
	if err != nil {
		logger.Warn("Failed to open history database", "path", cfg.HistoryDB, "error", err)
		return
	}
	defer database.Close()

	id, err := database.SaveConsultation(rm)
	if err != nil {
		logger.Warn("Failed to save consultation", "error", err)
		return
	}
	logger.Info("Consultation saved", "id", id, "db", database.Path())
}
