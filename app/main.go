package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/hashicorp/go-multierror"
	"github.com/jessevdk/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/snehiltiwari001/ChatBotAI/app/storage"
	"github.com/snehiltiwari001/ChatBotAI/app/storage/engine"
	"github.com/snehiltiwari001/ChatBotAI/app/webapi"
	"github.com/snehiltiwari001/ChatBotAI/lib/chatbot"
	"github.com/snehiltiwari001/ChatBotAI/lib/spamscore"
)

type options struct {
	Listen      string  `long:"listen" env:"LISTEN" default:":5000" description:"listen address"`
	Keywords    string  `long:"keywords" env:"KEYWORDS" description:"spam keywords file, one per line, built-in set if not set"`
	Threshold   float64 `long:"threshold" env:"THRESHOLD" default:"0.5" description:"spam probability threshold"`
	RateLimit   float64 `long:"rate-limit" env:"RATE_LIMIT" default:"50" description:"max requests per second per client, 0 to disable"`
	MaxBody     string  `long:"max-body" env:"MAX_BODY" default:"1M" description:"max request body size"`
	HistorySize int     `long:"history-size" env:"HISTORY_SIZE" default:"100" description:"in-memory history size, used if db not set"`
	AuthPasswd  string  `long:"auth" env:"AUTH_PASSWD" description:"basic auth password for history api, history api disabled if not set"`

	DB        string `long:"db" env:"DB" description:"database url for checks history, sqlite file or postgres://"`
	GID       string `long:"gid" env:"GID" default:"chatbot" description:"group id to separate records in shared database"`
	DBMaxSize int    `long:"db-max-size" env:"DB_MAX_SIZE" default:"10000" description:"max number of checks to keep in database"`

	Cache struct {
		Size int           `long:"size" env:"SIZE" default:"1000" description:"max number of cached classification results, 0 to disable"`
		TTL  time.Duration `long:"ttl" env:"TTL" default:"10m" description:"ttl of cached classification results"`
	} `group:"cache" namespace:"cache" env-namespace:"CACHE"`

	Logger struct {
		Enabled    bool   `long:"enabled" env:"ENABLED" description:"enable chat rotated logs"`
		FileName   string `long:"file" env:"FILE"  default:"chatbot.log" description:"location of chat log"`
		MaxSize    string `long:"max-size" env:"MAX_SIZE" default:"100M" description:"maximum size before it gets rotated"`
		MaxBackups int    `long:"max-backups" env:"MAX_BACKUPS" default:"10" description:"maximum number of old log files to retain"`
	} `group:"logger" namespace:"logger" env-namespace:"LOGGER"`

	Dbg bool `long:"dbg" env:"DEBUG" description:"debug mode"`
}

var revision = "local"

func main() {
	fmt.Printf("chatbot-ai %s\n", revision)
	var opts options
	p := flags.NewParser(&opts, flags.PrintErrors|flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if !errors.As(err, &flagsErr) || flagsErr.Type != flags.ErrHelp {
			log.Printf("[ERROR] cli error: %v", err)
		}
		os.Exit(2)
	}

	setupLog(opts.Dbg, dbPassword(opts.DB), opts.AuthPasswd)
	log.Printf("[DEBUG] options: %+v", opts)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		// catch signal and invoke graceful termination
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Printf("[WARN] interrupt signal")
		cancel()
	}()

	if err := execute(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

func execute(ctx context.Context, opts options) error {
	if err := validateOptions(opts); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	keywords, err := loadKeywords(opts.Keywords)
	if err != nil {
		return fmt.Errorf("can't load keywords: %w", err)
	}
	classifier := spamscore.NewClassifier(spamscore.Config{Keywords: keywords, Threshold: opts.Threshold})
	log.Printf("[INFO] classifier with %d keywords, threshold %.2f", len(classifier.Keywords()), classifier.Threshold())

	maxBody, err := sizeParse(opts.MaxBody)
	if err != nil {
		return fmt.Errorf("can't parse max body size: %w", err)
	}

	chatLog, err := makeChatLogWriter(opts)
	if err != nil {
		return fmt.Errorf("can't make chat log writer: %w", err)
	}
	defer chatLog.Close()

	cfg := webapi.Config{
		Version:     revision,
		ListenAddr:  opts.Listen,
		Classifier:  classifier,
		Responder:   chatbot.NewResponder(classifier),
		HistorySize: opts.HistorySize,
		RateLimit:   opts.RateLimit,
		MaxBodySize: int64(maxBody), //nolint:gosec // size limited by validation
		CacheSize:   opts.Cache.Size,
		CacheTTL:    opts.Cache.TTL,
		ChatLog:     chatLog,
		AuthPasswd:  opts.AuthPasswd,
	}

	if opts.DB != "" {
		db, err := engine.New(ctx, opts.DB, opts.GID)
		if err != nil {
			return fmt.Errorf("can't make db engine: %w", err)
		}
		defer db.Close()

		checks, err := storage.NewChecks(ctx, db, opts.DBMaxSize)
		if err != nil {
			return fmt.Errorf("can't make checks storage: %w", err)
		}
		count, err := checks.Count(ctx)
		if err != nil {
			return fmt.Errorf("can't count stored checks: %w", err)
		}
		log.Printf("[INFO] checks history in %s database, gid %q, %d records", db.Type(), db.GID(), count)
		cfg.History = checks
	}

	srv := webapi.NewServer(cfg)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("web server failed: %w", err)
	}
	return nil
}

func validateOptions(opts options) error {
	var errs *multierror.Error
	if opts.Threshold <= 0 || opts.Threshold >= 1 {
		errs = multierror.Append(errs, fmt.Errorf("threshold should be in (0, 1), got %v", opts.Threshold))
	}
	if opts.RateLimit < 0 {
		errs = multierror.Append(errs, fmt.Errorf("rate limit can't be negative, got %v", opts.RateLimit))
	}
	if opts.HistorySize < 1 {
		errs = multierror.Append(errs, fmt.Errorf("history size should be positive, got %d", opts.HistorySize))
	}
	if opts.Cache.Size < 0 {
		errs = multierror.Append(errs, fmt.Errorf("cache size can't be negative, got %d", opts.Cache.Size))
	}
	if opts.DB != "" && opts.DBMaxSize < 1 {
		errs = multierror.Append(errs, fmt.Errorf("db max size should be positive, got %d", opts.DBMaxSize))
	}
	if size, err := sizeParse(opts.MaxBody); err != nil || size == 0 || size > math.MaxInt32 {
		errs = multierror.Append(errs, fmt.Errorf("invalid max body size %q", opts.MaxBody))
	}
	return errs.ErrorOrNil()
}

// loadKeywords reads keywords from file, nil for the built-in set if file is not set
func loadKeywords(file string) ([]string, error) {
	if file == "" {
		return nil, nil
	}
	fh, err := os.Open(file) //nolint:gosec // file name from trusted cli option
	if err != nil {
		return nil, fmt.Errorf("can't open keywords file %s: %w", file, err)
	}
	defer fh.Close()

	res, err := spamscore.LoadKeywords(fh)
	if err != nil {
		return nil, fmt.Errorf("can't read keywords file %s: %w", file, err)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("no keywords in %s", file)
	}
	log.Printf("[INFO] loaded %d keywords from %s", len(res), file)
	return res, nil
}

func makeChatLogWriter(opts options) (chatLog io.WriteCloser, err error) {
	if !opts.Logger.Enabled {
		return nopWriteCloser{io.Discard}, nil
	}

	maxSize, perr := sizeParse(opts.Logger.MaxSize)
	if perr != nil {
		return nil, fmt.Errorf("can't parse logger MaxSize: %w", perr)
	}

	maxSize /= 1048576

	log.Printf("[INFO] logger enabled for %s, max size %dM", opts.Logger.FileName, maxSize)
	return &lumberjack.Logger{
		Filename:   opts.Logger.FileName,
		MaxSize:    int(maxSize), //nolint:gosec // in MB
		MaxBackups: opts.Logger.MaxBackups,
		Compress:   true,
		LocalTime:  true,
	}, nil
}

// sizeParse parses size with optional k/m/g/t suffix, like 10M
func sizeParse(inp string) (uint64, error) {
	if inp == "" {
		return 0, errors.New("empty value")
	}
	for i, sfx := range []string{"k", "m", "g", "t"} {
		if strings.HasSuffix(inp, strings.ToUpper(sfx)) || strings.HasSuffix(inp, strings.ToLower(sfx)) {
			val, err := strconv.Atoi(inp[:len(inp)-1])
			if err != nil {
				return 0, fmt.Errorf("can't parse %s: %w", inp, err)
			}
			return uint64(float64(val) * math.Pow(float64(1024), float64(i+1))), nil
		}
	}
	return strconv.ParseUint(inp, 10, 64)
}

// dbPassword extracts password from database url to hide it in logs
func dbPassword(dbURL string) string {
	u, err := url.Parse(dbURL)
	if err != nil || u.User == nil {
		return ""
	}
	passwd, _ := u.User.Password()
	return passwd
}

type nopWriteCloser struct{ io.Writer }

func (n nopWriteCloser) Close() error { return nil }

func setupLog(dbg bool, secrets ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	var nonEmpty []string
	for _, s := range secrets {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	if len(nonEmpty) > 0 {
		logOpts = append(logOpts, lgr.Secret(nonEmpty...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
