package game

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidReleaseDate = errors.New("invalid release date")
	ErrUnknownFormat      = errors.New("unknown record format")
)

// Format of a record file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath infers the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}

// Record is the wire shape of a game; ReleaseDate is YYYY-MM-DD.
type Record struct {
	Name        string   `yaml:"name" json:"name"`
	ReleaseDate string   `yaml:"releaseDate" json:"releaseDate"`
	CopiesSold  int      `yaml:"copiesSold" json:"copiesSold"`
	Director    string   `yaml:"director" json:"director"`
	Platforms   []string `yaml:"platforms" json:"platforms"`
}

type recordFile struct {
	Games []Record `yaml:"games" json:"games"`
}

func (r Record) Input() (Input, error) {
	date, err := time.Parse(time.DateOnly, r.ReleaseDate)
	if err != nil {
		return Input{}, fmt.Errorf("%w %q for %q: %w", ErrInvalidReleaseDate, r.ReleaseDate, r.Name, err)
	}
	return Input{
		Name:        r.Name,
		ReleaseDate: date,
		CopiesSold:  r.CopiesSold,
		Director:    r.Director,
		Platforms:   r.Platforms,
	}, nil
}

// Decode reads a record file of the given format.
func Decode(r io.Reader, format Format) ([]Input, error) {
	var file recordFile
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml records: %w", err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&file); err != nil {
			return nil, fmt.Errorf("decode json records: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	inputs := make([]Input, 0, len(file.Games))
	for _, rec := range file.Games {
		in, err := rec.Input()
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}
