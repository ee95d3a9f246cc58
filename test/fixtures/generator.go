package fixtures

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

// Generator generates raw (unquoted, naively delimited) test files
type Generator struct {
	outputDir string
	rand      *rand.Rand
}

// NewGenerator creates a new test data generator. A fixed seed keeps the
// generated corruption deterministic across runs.
func NewGenerator(outputDir string, seed int64) *Generator {
	return &Generator{
		outputDir: outputDir,
		rand:      rand.New(rand.NewSource(seed)),
	}
}

// Header returns the column layout the generator writes
func (g *Generator) Header() []string {
	return []string{"id", "name", "description", "price"}
}

var descriptionWords = []string{
	"sturdy", "compact", "reliable", "lightweight", "durable",
	"ergonomic", "versatile", "portable", "efficient", "rugged",
}

// description builds a comma-free description of a few words
func (g *Generator) description() string {
	words := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		words = append(words, descriptionWords[g.rand.Intn(len(descriptionWords))])
	}
	return strings.Join(words, " ") + " build"
}

// corruptedDescription builds a description containing unescaped commas
func (g *Generator) corruptedDescription() string {
	return fmt.Sprintf("%s, %s, and %s",
		descriptionWords[g.rand.Intn(len(descriptionWords))],
		descriptionWords[g.rand.Intn(len(descriptionWords))],
		descriptionWords[g.rand.Intn(len(descriptionWords))],
	)
}

// Generate writes a file with the given number of data rows, of which
// corrupted rows carry unescaped commas in the description column and
// truncated rows are missing their trailing fields. Corrupted and truncated
// rows are interleaved deterministically. Returns the file path.
func (g *Generator) Generate(filename string, rows, corrupted, truncated int) (string, error) {
	path := filepath.Join(g.outputDir, filename)

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := fmt.Fprintln(file, strings.Join(g.Header(), ",")); err != nil {
		return "", err
	}

	for i := 0; i < rows; i++ {
		id := i + 1
		name := fmt.Sprintf("item_%d", id)
		price := fmt.Sprintf("%d.%02d", 1+g.rand.Intn(99), g.rand.Intn(100))

		var line string
		switch {
		case i < corrupted:
			line = fmt.Sprintf("%d,%s,%s,%s", id, name, g.corruptedDescription(), price)
		case i < corrupted+truncated:
			line = fmt.Sprintf("%d,%s", id, name)
		default:
			line = fmt.Sprintf("%d,%s,%s,%s", id, name, g.description(), price)
		}

		if _, err := fmt.Fprintln(file, line); err != nil {
			return "", err
		}
	}

	return path, nil
}
