package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iabetor/kokoro-g2p/internal/config"
	"github.com/iabetor/kokoro-g2p/internal/database"
	"github.com/iabetor/kokoro-g2p/internal/english"
	"github.com/iabetor/kokoro-g2p/internal/frontend"
	"github.com/iabetor/kokoro-g2p/internal/g2p"
	"github.com/iabetor/kokoro-g2p/internal/lexicon"
	"github.com/iabetor/kokoro-g2p/internal/logger"
	"github.com/iabetor/kokoro-g2p/internal/pinyin"
	"github.com/iabetor/kokoro-g2p/internal/segment"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径，为空时使用默认配置")
	mode := flag.String("mode", "", "输出模式: current 或 legacy，覆盖配置文件")
	chunk := flag.Bool("chunk", false, "按句分段输出，每段一行")
	flag.Usage = printUsage
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
			os.Exit(1)
		}
	}
	if *mode != "" {
		cfg.G2P.Mode = *mode
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}

	var code int
	args := flag.Args()
	switch {
	case len(args) > 0 && args[0] == "lexicon":
		code = runLexicon(cfg, args[1:])
	case len(args) > 0 && args[0] == "readings":
		code = runReadings(args[1:])
	default:
		code = runConvert(cfg, args, *chunk)
	}
	logger.Sync()
	os.Exit(code)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "kokoro-g2p 中英混合文本音素转换工具")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "用法: kokoro-g2p [-config <path>] [-mode current|legacy] [-chunk] [文本...]")
	fmt.Fprintln(os.Stderr, "      kokoro-g2p [-config <path>] lexicon <command> [args]")
	fmt.Fprintln(os.Stderr, "      kokoro-g2p readings <汉字...>    列出每个字的全部读音")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "不带文本参数时逐行读取标准输入。")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "词库命令:")
	fmt.Fprintln(os.Stderr, "  add <词> <拼音> [备注]  添加或更新读音，拼音如 \"huan2 kuan3\"")
	fmt.Fprintln(os.Stderr, "  remove <词>            删除词条")
	fmt.Fprintln(os.Stderr, "  list                   列出所有词条")
}

func runConvert(cfg *config.Config, args []string, chunk bool) int {
	conv, closeFn, err := buildConverter(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		return 1
	}
	defer closeFn()

	convert := func(text string) error {
		reqLog := logger.Named("main").With(zap.String("request_id", uuid.NewString()))
		start := time.Now()

		var lines []string
		var err error
		if chunk {
			lines, err = conv.ConvertSentences(text, cfg.G2P.ChunkSize)
		} else {
			var ph string
			ph, err = conv.Convert(text)
			lines = []string{ph}
		}
		if err != nil {
			reqLog.Error("转换失败", zap.String("text", text), zap.Error(err))
			return err
		}
		for _, l := range lines {
			fmt.Println(l)
		}
		reqLog.Info("转换完成", zap.Int("runes", len([]rune(text))), zap.Duration("elapsed", time.Since(start)))
		return nil
	}

	if len(args) > 0 {
		if err := convert(strings.Join(args, " ")); err != nil {
			fmt.Fprintf(os.Stderr, "转换失败: %v\n", err)
			return 1
		}
		return 0
	}

	status := 0
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := convert(line); err != nil {
			fmt.Fprintf(os.Stderr, "转换失败: %v\n", err)
			status = 1
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "读取标准输入失败: %v\n", err)
		return 1
	}
	return status
}

// buildConverter 按配置组装分词器、用户词库、中文前端和英文音素化器。
func buildConverter(cfg *config.Config) (*g2p.Converter, func(), error) {
	mode, err := g2p.ParseMode(cfg.G2P.Mode)
	if err != nil {
		return nil, nil, err
	}

	seg, err := segment.NewGse(cfg.Segmenter.DictPath)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {}
	opts := []frontend.Option{frontend.WithErhua(cfg.G2P.ErhuaEnabled())}
	if cfg.Lexicon.Path != "" {
		db, err := database.Open(cfg.Lexicon.Path)
		if err != nil {
			return nil, nil, err
		}
		closeFn = func() { db.Close() }

		phrases, err := loadLexicon(db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		opts = append(opts, frontend.WithPhrases(phrases))
	}

	fe, err := frontend.New(seg, opts...)
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	en, err := buildEnglish(cfg.English)
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	logger.Infof("[main] kokoro-g2p 已就绪 (mode=%s, english=%s)", mode, cfg.English.Backend)
	return g2p.New(fe, seg, english.Acronyms(en), g2p.WithMode(mode)), closeFn, nil
}

func loadLexicon(db *database.DB) (map[string][]pinyin.Syllable, error) {
	store, err := lexicon.NewStore(db)
	if err != nil {
		return nil, err
	}
	return store.Phrases()
}

func buildEnglish(cfg config.EnglishConfig) (english.Phonemizer, error) {
	if cfg.Backend == "goruut" {
		return english.NewGoruut(), nil
	}

	sel := english.First()
	if cfg.Selection == "random" {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		sel = english.Random(rand.New(rand.NewSource(seed)))
	}

	dict, err := english.Embedded(english.WithSelector(sel))
	if err != nil {
		return nil, err
	}
	if cfg.DictPath != "" {
		f, err := os.Open(cfg.DictPath)
		if err != nil {
			return nil, fmt.Errorf("打开英文词典失败: %w", err)
		}
		defer f.Close()
		if err := dict.Load(f); err != nil {
			return nil, fmt.Errorf("加载英文词典 %s 失败: %w", cfg.DictPath, err)
		}
	}
	return dict, nil
}

func runLexicon(cfg *config.Config, args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}
	if cfg.Lexicon.Path == "" {
		fmt.Fprintln(os.Stderr, "用户词库未启用，请在配置文件中设置 lexicon.path")
		return 1
	}

	db, err := database.Open(cfg.Lexicon.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "打开词库失败: %v\n", err)
		return 1
	}
	defer db.Close()

	store, err := lexicon.NewStore(db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化词库失败: %v\n", err)
		return 1
	}

	switch args[0] {
	case "add":
		if len(args) < 3 {
			fmt.Fprintln(os.Stderr, "用法: kokoro-g2p lexicon add <词> <拼音> [备注]")
			return 1
		}
		note := ""
		if len(args) > 3 {
			note = strings.Join(args[3:], " ")
		}
		if err := store.Add(args[1], args[2], note); err != nil {
			fmt.Fprintf(os.Stderr, "添加失败: %v\n", err)
			return 1
		}
		fmt.Printf("已添加: %s -> %s\n", args[1], args[2])
	case "remove":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "用法: kokoro-g2p lexicon remove <词>")
			return 1
		}
		ok, err := store.Remove(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "删除失败: %v\n", err)
			return 1
		}
		if !ok {
			fmt.Fprintf(os.Stderr, "词条不存在: %s\n", args[1])
			return 1
		}
		fmt.Printf("已删除: %s\n", args[1])
	case "list":
		entries, err := store.List()
		if err != nil {
			fmt.Fprintf(os.Stderr, "查询失败: %v\n", err)
			return 1
		}
		if len(entries) == 0 {
			fmt.Println("词库为空")
			return 0
		}
		for _, e := range entries {
			line := fmt.Sprintf("%s\t%s", e.Word, pinyin.FormatSyllables(e.Pinyin))
			if e.Note != "" {
				line += "\t" + e.Note
			}
			fmt.Println(line)
		}
	default:
		fmt.Fprintf(os.Stderr, "未知命令: %s\n", args[0])
		printUsage()
		return 1
	}
	return 0
}

// runReadings 列出每个汉字的全部读音，方便为词库选择拼音。
func runReadings(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "用法: kokoro-g2p readings <汉字...>")
		return 1
	}
	for _, r := range strings.Join(args, "") {
		syls := pinyin.Readings(r)
		if len(syls) == 0 {
			continue
		}
		fmt.Printf("%c\t%s\n", r, pinyin.FormatSyllables(syls))
	}
	return 0
}
