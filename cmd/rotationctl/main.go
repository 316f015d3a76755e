// rotationctl is the command line front end for the rotation builder:
// it converts rotation files between formats, validates and analyzes
// them, and manages the stored rotation library.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/soeforge/rotation-builder/internal/codec"
	"github.com/soeforge/rotation-builder/internal/config"
	domain "github.com/soeforge/rotation-builder/internal/domain/rotation"
	"github.com/soeforge/rotation-builder/internal/repositories/rotations"
	"github.com/soeforge/rotation-builder/internal/services"
	rotationService "github.com/soeforge/rotation-builder/internal/services/rotation"
)

const convertConcurrency = 4

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	provider := newProvider(cfg)

	var cmdErr error
	switch os.Args[1] {
	case "formats":
		cmdErr = runFormats(provider)
	case "convert":
		cmdErr = runConvert(provider, os.Args[2:])
	case "validate":
		cmdErr = runValidate(provider, os.Args[2:])
	case "analyze":
		cmdErr = runAnalyze(provider, os.Args[2:])
	case "import":
		cmdErr = runImport(provider, cfg, os.Args[2:])
	case "list":
		cmdErr = runList(provider, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if cmdErr != nil {
		log.Fatalf("%s failed: %v", os.Args[1], cmdErr)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: rotationctl <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  formats                               list supported formats")
	fmt.Fprintln(os.Stderr, "  convert  -from F -to F [-out DIR] FILE...")
	fmt.Fprintln(os.Stderr, "  validate -file FILE [-format F]")
	fmt.Fprintln(os.Stderr, "  analyze  -file FILE [-format F]")
	fmt.Fprintln(os.Stderr, "  import   -file FILE [-format F]")
	fmt.Fprintln(os.Stderr, "  list     [-class NAME] [-spec NAME]")
}

// newProvider wires the services, preferring Redis persistence and
// falling back to in-memory storage when Redis is unreachable
func newProvider(cfg *config.Config) *services.Provider {
	providerConfig := &services.ProviderConfig{}

	if client := connectRedis(cfg); client != nil {
		providerConfig.RotationRepository = rotations.NewRedisRepository(&rotations.RedisRepoConfig{
			Client: client,
		})
	}

	return services.NewProvider(providerConfig)
}

func connectRedis(cfg *config.Config) redis.UniversalClient {
	opts := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		parsed, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Printf("Failed to parse Redis URL: %v", err)
			log.Println("Falling back to in-memory repositories")
			return nil
		}
		opts = parsed
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory repositories")
		return nil
	}

	return client
}

func runFormats(provider *services.Provider) error {
	for _, name := range provider.Codec.Formats() {
		fmt.Println(name)
	}
	return nil
}

// runConvert transcodes every input file concurrently
func runConvert(provider *services.Provider, args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	from := fs.String("from", "", "source format (defaults from file extension)")
	to := fs.String("to", "", "target format")
	outDir := fs.String("out", "", "output directory (defaults to the input's directory)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	files := fs.Args()
	if len(files) == 0 {
		return fmt.Errorf("no input files")
	}
	if *to == "" {
		return fmt.Errorf("-to is required")
	}

	group, _ := errgroup.WithContext(context.Background())
	group.SetLimit(convertConcurrency)

	for _, file := range files {
		file := file
		group.Go(func() error {
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}

			sourceFormat := *from
			if sourceFormat == "" {
				sourceFormat = formatFromExtension(file)
			}

			out, err := provider.Codec.Convert(string(data), sourceFormat, *to)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			target := outputPath(file, *outDir, *to)
			if err := os.WriteFile(target, []byte(out+"\n"), 0o644); err != nil {
				return err
			}

			log.Printf("Converted %s -> %s", file, target)
			return nil
		})
	}

	return group.Wait()
}

func runValidate(provider *services.Provider, args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	file := fs.String("file", "", "rotation file")
	format := fs.String("format", "", "file format (defaults from file extension)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rot, err := readRotation(provider, *file, *format)
	if err != nil {
		return err
	}

	result := provider.AnalysisService.ValidateRotation(rot)

	fmt.Printf("Rotation: %s (%s/%s)\n", rot.Metadata.Name, rot.Metadata.ClassName, rot.Metadata.SpecName)
	fmt.Printf("Spells: %d (critical %d, defensive %d, cooldown %d, conditional %d)\n",
		result.Stats.SpellCount, result.Stats.CriticalSpells, result.Stats.DefensiveSpells,
		result.Stats.CooldownSpells, result.Stats.ConditionalSpells)

	for _, e := range result.Errors {
		fmt.Printf("error: %s\n", e)
	}
	for _, w := range result.Warnings {
		fmt.Printf("warning: %s\n", w)
	}

	if !result.IsValid {
		return fmt.Errorf("rotation is invalid")
	}
	fmt.Println("Rotation is valid")
	return nil
}

func runAnalyze(provider *services.Provider, args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	file := fs.String("file", "", "rotation file")
	format := fs.String("format", "", "file format (defaults from file extension)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rot, err := readRotation(provider, *file, *format)
	if err != nil {
		return err
	}

	report := provider.AnalysisService.AnalyzeRotation(rot)

	fmt.Printf("Rotation: %s (%s/%s)\n", rot.Metadata.Name, rot.Metadata.ClassName, rot.Metadata.SpecName)
	fmt.Printf("Complexity: %.2f\n", report.Complexity)
	fmt.Printf("Efficiency: %.2f\n", report.Efficiency)
	fmt.Printf("Coverage: single-target %.2f, aoe %.2f, defensive %.2f, cooldown %.2f\n",
		report.Coverage.SingleTarget, report.Coverage.AOE,
		report.Coverage.Defensive, report.Coverage.Cooldown)

	for _, gap := range report.Gaps {
		fmt.Printf("gap: %s\n", gap)
	}
	for _, suggestion := range report.Suggestions {
		fmt.Printf("suggestion: %s\n", suggestion)
	}
	return nil
}

func runImport(provider *services.Provider, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	file := fs.String("file", "", "rotation file")
	format := fs.String("format", "", "file format (defaults from file extension)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rot, err := readRotation(provider, *file, *format)
	if err != nil {
		return err
	}

	if rot.Metadata.Author == "" {
		rot.Metadata.Author = cfg.Rotation.DefaultAuthor
	}
	if rot.Metadata.Version == "" {
		rot.Metadata.Version = cfg.Rotation.DefaultVersion
	}

	ctx := context.Background()
	created, err := provider.RotationService.Create(ctx, &rotationService.CreateInput{
		ClassName:   rot.Metadata.ClassName,
		SpecName:    rot.Metadata.SpecName,
		Name:        rot.Metadata.Name,
		Author:      rot.Metadata.Author,
		Description: rot.Metadata.Description,
		Tags:        rot.Metadata.Tags,
	})
	if err != nil {
		return err
	}

	for _, spell := range rot.Spells {
		updated, err := provider.RotationService.AddSpell(ctx, &rotationService.AddSpellInput{
			RotationID: created.ID,
			Name:       spell.Name,
			Condition:  spell.Condition,
			Priority:   spell.Priority,
		})
		if err != nil {
			return err
		}

		if !spell.Enabled || spell.Notes != "" {
			enabled := spell.Enabled
			notes := spell.Notes
			if _, err := provider.RotationService.UpdateSpell(ctx, &rotationService.UpdateSpellInput{
				RotationID: updated.ID,
				Priority:   spell.Priority,
				Enabled:    &enabled,
				Notes:      &notes,
			}); err != nil {
				return err
			}
		}
	}

	fmt.Printf("Imported %s as %s\n", rot.Metadata.Name, created.ID)
	return nil
}

func runList(provider *services.Provider, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	class := fs.String("class", "", "filter by class name")
	spec := fs.String("spec", "", "filter by spec name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rots, err := provider.RotationService.List(context.Background(), &rotationService.ListInput{
		ClassName: *class,
		SpecName:  *spec,
	})
	if err != nil {
		return err
	}

	if len(rots) == 0 {
		fmt.Println("No rotations stored")
		return nil
	}

	for _, rot := range rots {
		fmt.Printf("%s  %-30s %s/%s  %d spells\n",
			rot.ID, rot.Metadata.Name, rot.Metadata.ClassName, rot.Metadata.SpecName, len(rot.Spells))
	}
	return nil
}

// readRotation loads and parses one rotation file
func readRotation(provider *services.Provider, file, format string) (*domain.Rotation, error) {
	if file == "" {
		return nil, fmt.Errorf("-file is required")
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	if format == "" {
		format = formatFromExtension(file)
	}
	adapter, err := provider.Codec.Get(format)
	if err != nil {
		return nil, err
	}

	return adapter.Deserialize(string(data))
}

// formatFromExtension maps a file extension to a format name; .txt reads
// as the engine registration format
func formatFromExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return codec.FormatJSON
	case ".xml":
		return codec.FormatXML
	case ".lua":
		return codec.FormatLua
	default:
		return codec.FormatSOE
	}
}

// outputPath builds the converted file's destination path
func outputPath(input, outDir, format string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	name := base + extensionForFormat(format)
	if outDir == "" {
		return filepath.Join(filepath.Dir(input), name)
	}
	return filepath.Join(outDir, name)
}

func extensionForFormat(format string) string {
	switch format {
	case codec.FormatJSON:
		return ".json"
	case codec.FormatXML:
		return ".xml"
	case codec.FormatLua:
		return ".lua"
	default:
		return ".txt"
	}
}
