package dataset

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cinescope/cinescope/internal/domain/entity"
)

const (
	movieFile     = "movie.metadata.tsv"
	characterFile = "character.metadata.tsv"
	summaryFile   = "plot_summaries.txt"
)

// Dataset holds the loaded corpus.
type Dataset struct {
	Movies     []*entity.Movie
	Characters []*entity.Character
	Summaries  []*entity.PlotSummary
}

// Load parses the extracted TSV files into entities. Rows that cannot be
// parsed are skipped; the corpus contains a handful of malformed lines.
func Load(dir string, log *zap.Logger) (*Dataset, error) {
	ds := &Dataset{}

	var err error
	if ds.Movies, err = loadMovies(filepath.Join(dir, movieFile)); err != nil {
		return nil, err
	}
	if ds.Characters, err = loadCharacters(filepath.Join(dir, characterFile)); err != nil {
		return nil, err
	}
	if ds.Summaries, err = loadSummaries(filepath.Join(dir, summaryFile)); err != nil {
		return nil, err
	}

	log.Info("Datasets loaded",
		zap.Int("movies", len(ds.Movies)),
		zap.Int("characters", len(ds.Characters)),
		zap.Int("summaries", len(ds.Summaries)))

	return ds, nil
}

func loadMovies(path string) ([]*entity.Movie, error) {
	var movies []*entity.Movie
	err := scanTSV(path, 9, func(fields []string) {
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return
		}
		m := &entity.Movie{
			WikipediaID: id,
			FreebaseID:  fields[1],
			Title:       fields[2],
			ReleaseDate: fields[3],
		}
		m.BoxOffice, _ = strconv.ParseFloat(fields[4], 64)
		m.RuntimeMin, _ = strconv.ParseFloat(fields[5], 64)
		m.Languages, _ = entity.ParseFreebaseMap(fields[6])
		m.Countries, _ = entity.ParseFreebaseMap(fields[7])
		m.Genres, _ = entity.ParseFreebaseMap(fields[8])
		movies = append(movies, m)
	})
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func loadCharacters(path string) ([]*entity.Character, error) {
	var characters []*entity.Character
	err := scanTSV(path, 13, func(fields []string) {
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return
		}
		c := &entity.Character{
			WikipediaID:     id,
			FreebaseMovieID: fields[1],
			ReleaseDate:     fields[2],
			CharacterName:   fields[3],
			ActorDOB:        fields[4],
			ActorGender:     fields[5],
			ActorEthnicity:  fields[7],
			ActorName:       fields[8],
		}
		if h, err := strconv.ParseFloat(fields[6], 64); err == nil {
			c.ActorHeight = &h
		}
		if a, err := strconv.ParseFloat(fields[9], 64); err == nil {
			c.ActorAge = &a
		}
		characters = append(characters, c)
	})
	if err != nil {
		return nil, err
	}
	return characters, nil
}

func loadSummaries(path string) ([]*entity.PlotSummary, error) {
	var summaries []*entity.PlotSummary
	err := scanTSV(path, 2, func(fields []string) {
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return
		}
		summaries = append(summaries, &entity.PlotSummary{
			WikipediaID: id,
			Summary:     fields[1],
		})
	})
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// scanTSV reads a tab-separated file line by line, invoking fn for every
// line that has at least minFields fields. Plot summaries can run long, so
// the scanner buffer is raised well above the default.
func scanTSV(path string, minFields int, fn func(fields []string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("dataset file missing: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < minFields {
			continue
		}
		fn(fields)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return nil
}
