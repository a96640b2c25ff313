package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/go-faker/faker/v4"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"twofour/cli"
	"twofour/logger"
	"twofour/twofour"
)

// demoKeys is the insertion order of the reference driver run.
var demoKeys = []int{47, 83, 22, 16, 49, 100, 38, 3, 53, 66, 19, 23, 24, 88, 1, 97, 94, 35, 51}

var shouldDemo, shouldSeed, shouldCheck, verbose *bool
var seedNumRecords *int
var loggerKind *string

func setupFlags() {
	shouldDemo = flag.Bool("demo", false, "Build and print the reference 19-key tree before startup.")
	shouldSeed = flag.Bool("seed", false, "Seed the tree using records created with go-faker.")
	seedNumRecords = flag.Int("records", 1000, "Amount of records to seed the tree with upon startup.")
	shouldCheck = flag.Bool("check", false, "Verify the whole tree after every insert.")
	loggerKind = flag.String("logger", "none", "Log tree events with none, logrus or zap.")
	verbose = flag.Bool("verbose", false, "Log every node split.")
	flag.Usage = func() {
		fmt.Println("\n2-4 Tree CLI\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}

func newLogger() (twofour.Logger, func(), error) {
	switch *loggerKind {
	case "none":
		return twofour.DiscardLogger{}, func() {}, nil
	case "logrus":
		l := logrus.New()
		l.SetOutput(os.Stderr)
		if *verbose {
			l.SetLevel(logrus.DebugLevel)
		}
		return logger.NewLogrus(l), func() {}, nil
	case "zap":
		cfg := zap.NewDevelopmentConfig()
		if !*verbose {
			cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		}
		z, err := cfg.Build()
		if err != nil {
			return nil, nil, errors.Wrap(err, "building zap logger")
		}
		return logger.NewZap(z), func() { _ = z.Sync() }, nil
	default:
		return nil, nil, errors.Newf("unknown logger %q", *loggerKind)
	}
}

func runDemo(opts []twofour.Option) {
	tree := twofour.New[int, string](twofour.Natural[int](), opts...)
	for _, k := range demoKeys {
		if err := tree.Insert(k, strconv.Itoa(k)); err != nil {
			log.Fatal(err)
		}
	}
	v := &twofour.Visualizer[int, string]{Tree: tree}
	fmt.Println(v.Visualize())
	if err := tree.Check(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("done: %d items, height %d\n", tree.Size(), tree.Height())
	if _, err := tree.Find(7); err != nil {
		fmt.Println(err)
	}
}

func seedTreeWithTestRecords(tree *twofour.Tree[int, string]) {
	for i := 0; i < *seedNumRecords; i++ {
		k := rand.IntN(*seedNumRecords * 10)
		v := faker.Word() + faker.Word()
		if err := tree.Insert(k, v); err != nil {
			log.Fatal(err)
		}
	}
}

func main() {
	setupFlags()

	l, sync, err := newLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer sync()

	opts := []twofour.Option{twofour.WithLogger(l)}
	if *shouldCheck {
		opts = append(opts, twofour.WithInvariantChecks())
	}

	if *shouldDemo {
		runDemo(opts)
	}

	tree := twofour.New[int, string](twofour.Natural[int](), opts...)
	if *shouldSeed {
		seedTreeWithTestRecords(tree)
	}

	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.NewCli(scanner, os.Stdout, tree)
	demo.Start()
}
