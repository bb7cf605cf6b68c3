package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"postpulse/internal/analytics"
	"postpulse/internal/cmdlog"
	"postpulse/internal/config"
	"postpulse/internal/jobs"
	"postpulse/internal/metrics"
	"postpulse/internal/model"
	"postpulse/internal/server"
	"postpulse/internal/store/postdb"
	"postpulse/internal/theme"
)

func main() {
	_ = godotenv.Load()
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	switch cmd {
	case "init":
		cmdInit()
	case "serve":
		cmdServe()
	case "recommend":
		cmdRecommend()
	case "hashtags":
		cmdHashtags()
	case "suggest":
		cmdSuggest()
	case "seed":
		cmdSeed()
	default:
		printHelp()
	}
}

func printHelp() {
	theme.PrintBanner()
	fmt.Println("Usage: postpulse <command> [options]")
	fmt.Println("Commands:")
	fmt.Println("  init        Create a config file at ./postpulse.yaml")
	fmt.Println("  serve       Run the analytics API server")
	fmt.Println("  recommend   Recommend a posting window for a platform")
	fmt.Println("  hashtags    Show hashtag performance and trends")
	fmt.Println("  suggest     Suggest hashtags for new content")
	fmt.Println("  seed        Insert demo posts into the store")
}

func loadConfig(path string) config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Println("error:", err)
			os.Exit(1)
		}
		cfg = config.Default()
		cfg.ResolveEnv()
	}
	return cfg
}

func openStore(cfg config.Config) *postdb.DB {
	db, err := postdb.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	return db
}

func cmdInit() {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := fs.String("path", "./postpulse.yaml", "path to write config")
	_ = fs.Parse(os.Args[2:])
	if err := config.Save(*path, config.Default()); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	abs, _ := filepath.Abs(*path)
	theme.PrintBanner()
	fmt.Println("Config written to:", abs)
}

func cmdServe() {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "./postpulse.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)

	db := openStore(cfg)
	defer db.Close()

	engine := analytics.NewEngineWith(cfg.ProfileTable(), cfg.PopularTable())
	snapshots := jobs.NewSnapshotService(db, engine, cfg.Snapshot.Platform)

	metrics.StartServer(cfg.Server.MetricsAddr)
	if err := snapshots.Start(context.Background(), cfg.Snapshot.Schedule); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	defer snapshots.Stop()

	srv := server.New(db, engine, snapshots, cfg.Server.RateRPS, cfg.Server.RateBurst)
	if err := srv.ListenAndServe(cfg.Server.Addr); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func cmdRecommend() {
	fs := flag.NewFlagSet("recommend", flag.ExitOnError)
	cfgPath := fs.String("config", "./postpulse.yaml", "config path")
	platform := fs.String("platform", "instagram", "target platform")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)

	_ = cmdlog.Run("recommend", func() error {
		db := openStore(cfg)
		defer db.Close()
		posts, err := db.LoadPosts(context.Background())
		if err != nil {
			return err
		}

		engine := analytics.NewEngineWith(cfg.ProfileTable(), cfg.PopularTable())
		rec := engine.AnalyzeTimeSlots(posts, model.PlatformID(*platform), time.Now().UTC())

		fmt.Printf("%s at %02d:00 (next: %s)\n", rec.Recommended.DayOfWeek, rec.Recommended.Hour, rec.Recommended.Date.Format(time.RFC3339))
		fmt.Println(rec.Reason)
		fmt.Printf("confidence=%.2f posts=%d improvement=%+d%%\n", rec.Confidence, rec.Insights.TotalPosts, rec.Insights.ImprovementPercent)
		for _, alt := range rec.Alternatives {
			fmt.Printf("  alt: %s at %02d:00 avg=%.2f\n", alt.DayOfWeek, alt.Hour, alt.AvgEngagement)
		}
		return nil
	})
}

func cmdHashtags() {
	fs := flag.NewFlagSet("hashtags", flag.ExitOnError)
	cfgPath := fs.String("config", "./postpulse.yaml", "config path")
	limit := fs.Int("limit", 10, "tags to display")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)

	_ = cmdlog.Run("hashtags", func() error {
		db := openStore(cfg)
		defer db.Close()
		posts, err := db.LoadPosts(context.Background())
		if err != nil {
			return err
		}

		engine := analytics.NewEngineWith(cfg.ProfileTable(), cfg.PopularTable())
		report := engine.AnalyzeHashtags(posts, time.Now().UTC())
		for i, s := range report.All {
			if i >= *limit {
				break
			}
			fmt.Printf("%-20s avg=%.2f uses=%d trend=%s perf=%s\n", s.Tag, s.AvgEngagement, s.UsageCount, s.Trend, s.Performance)
		}
		for _, c := range report.Combinations {
			fmt.Printf("combo %s + %s avg=%.2f uses=%d\n", c.Combination[0], c.Combination[1], c.AvgEngagement, c.UsageCount)
		}
		return nil
	})
}

func cmdSuggest() {
	fs := flag.NewFlagSet("suggest", flag.ExitOnError)
	cfgPath := fs.String("config", "./postpulse.yaml", "config path")
	content := fs.String("content", "", "draft post content")
	platform := fs.String("platform", "instagram", "target platform")
	existing := fs.String("existing", "", "comma-separated hashtags already on the post")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)

	_ = cmdlog.Run("suggest", func() error {
		engine := analytics.NewEngineWith(cfg.ProfileTable(), cfg.PopularTable())
		var present []string
		if *existing != "" {
			present = strings.Split(*existing, ",")
		}
		for _, s := range engine.SuggestHashtags(*content, model.PlatformID(*platform), present) {
			fmt.Printf("%-20s confidence=%.1f category=%s\n", s.Tag, s.Confidence, s.Category)
		}
		return nil
	})
}

func cmdSeed() {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	cfgPath := fs.String("config", "./postpulse.yaml", "config path")
	count := fs.Int("count", 12, "demo posts to insert")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)

	_ = cmdlog.Run("seed", func() error {
		db := openStore(cfg)
		defer db.Close()
		ctx := context.Background()
		now := time.Now().UTC()

		contents := []string{
			"Nouvelle collection en ligne #mode #style",
			"Behind the scenes #studio #creation",
			"Promo du week-end #promo #shopping",
			"Tutoriel express #diy #astuce",
		}
		platforms := []model.PlatformID{
			model.PlatformInstagram, model.PlatformFacebook, model.PlatformTwitter,
		}
		for i := 0; i < *count; i++ {
			p := model.Post{
				ID:            uuid.NewString(),
				Content:       contents[i%len(contents)],
				ScheduledTime: now.AddDate(0, 0, -i*3).Truncate(time.Hour),
				Platforms:     []model.PlatformID{platforms[i%len(platforms)]},
				Likes:         40 + i*7,
				Comments:      3 + i,
				Shares:        2 + i/2,
				Views:         900 + i*120,
				Reach:         1200 + i*150,
			}
			if err := db.PutPost(ctx, p); err != nil {
				return err
			}
		}
		fmt.Printf("Seeded %d posts into %s\n", *count, cfg.Storage.DBPath)
		return nil
	})
}
