package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Akshansingh/EDTECHPCM/internal/catalog"
	"github.com/Akshansingh/EDTECHPCM/internal/topic"
)

func main() {
	var (
		command = flag.String("command", "validate", "Catalog command: validate, dump, topics, or resolve")
		file    = flag.String("file", os.Getenv("CATALOG_PATH"), "Catalog YAML file (empty uses the built-in catalog)")
		subject = flag.String("subject", "", "Subject for resolve")
		name    = flag.String("topic", "", "Topic for resolve")
	)
	flag.Parse()

	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := run(os.Stdout, *command, *file, *subject, *name); err != nil {
		log.Fatal().Err(err).Str("command", *command).Str("file", *file).Msg("catalog command failed")
	}
}

func run(out io.Writer, command, file, subject, name string) error {
	c, err := load(file)
	if err != nil {
		return err
	}

	switch command {
	case "validate":
		log.Info().
			Int("master_topics", len(c.MasterTopics)).
			Int("question_topics", c.Questions.Table.Len()).
			Int("document_topics", c.Documents.Table.Len()).
			Int("quizzes", len(c.Quizzes)).
			Msg("catalog is valid")
		return nil

	case "dump":
		data, err := catalog.Marshal(c)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err

	case "topics":
		for _, s := range catalog.Subjects {
			fmt.Fprintf(out, "%s\n", s.Title())
			for _, t := range c.Questions.Table.Topics(s) {
				fmt.Fprintf(out, "  questions: %s\n", t)
			}
			for _, t := range c.Documents.Table.Topics(s) {
				fmt.Fprintf(out, "  documents: %s\n", t)
			}
		}
		return nil

	case "resolve":
		s, err := catalog.ParseSubject(subject)
		if err != nil {
			return err
		}
		r := topic.NewResolver(c)
		qs := r.Questions(s, name)
		docs := r.Documents(s, name)
		fmt.Fprintf(out, "questions: %s %q (%d items)\n", qs.Outcome, qs.MatchedTopic, len(qs.Items))
		fmt.Fprintf(out, "documents: %s %q (%d items)\n", docs.Outcome, docs.MatchedTopic, len(docs.Items))
		if similar := r.SimilarTopics(name); len(similar) > 0 {
			fmt.Fprintf(out, "similar: %v\n", similar)
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q. Use: validate, dump, topics, or resolve", command)
	}
}

func load(file string) (*catalog.Catalog, error) {
	if file == "" {
		c := catalog.Default()
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("built-in catalog: %w", err)
		}
		return c, nil
	}
	return catalog.Load(file)
}
