package catalog

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape. Topic entries are sequences so the
// declared order survives a round trip.
type catalogFile struct {
	MasterTopics []string              `yaml:"master_topics"`
	Questions    sectionFile[Question] `yaml:"questions"`
	Documents    sectionFile[Document] `yaml:"documents"`
	Quizzes      []Quiz                `yaml:"quizzes"`
}

type sectionFile[T any] struct {
	Topics   map[Subject][]topicEntry[T] `yaml:"topics"`
	Fallback map[Subject][]T             `yaml:"fallback"`
}

type topicEntry[T any] struct {
	Topic string `yaml:"topic"`
	Items []T    `yaml:"items"`
}

// Load reads, parses and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML into a validated catalog. Unknown fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	c := &Catalog{
		MasterTopics: file.MasterTopics,
		Quizzes:      file.Quizzes,
	}
	var err error
	if c.Questions, err = buildSection(file.Questions); err != nil {
		return nil, fmt.Errorf("questions: %w", err)
	}
	if c.Documents, err = buildSection(file.Documents); err != nil {
		return nil, fmt.Errorf("documents: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return c, nil
}

func buildSection[T any](file sectionFile[T]) (Section[T], error) {
	section := NewSection[T]()
	for subject, entries := range file.Topics {
		if !subject.Valid() {
			return section, fmt.Errorf("%w: %q", ErrUnknownSubject, subject)
		}
		for _, entry := range entries {
			if section.Table.Has(subject, entry.Topic) {
				return section, fmt.Errorf("%s/%s listed twice", subject, entry.Topic)
			}
			section.Table.Put(subject, entry.Topic, entry.Items)
		}
	}
	for subject, items := range file.Fallback {
		if !subject.Valid() {
			return section, fmt.Errorf("%w: %q", ErrUnknownSubject, subject)
		}
		section.Fallback[subject] = items
	}
	return section, nil
}

// Marshal encodes c in the file format Parse accepts.
func Marshal(c *Catalog) ([]byte, error) {
	file := catalogFile{
		MasterTopics: c.MasterTopics,
		Questions:    sectionToFile(c.Questions),
		Documents:    sectionToFile(c.Documents),
		Quizzes:      c.Quizzes,
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return buf.Bytes(), nil
}

func sectionToFile[T any](s Section[T]) sectionFile[T] {
	file := sectionFile[T]{
		Topics:   make(map[Subject][]topicEntry[T]),
		Fallback: make(map[Subject][]T),
	}
	for _, subject := range Subjects {
		for _, topic := range s.Table.Topics(subject) {
			items, _ := s.Table.Get(subject, topic)
			file.Topics[subject] = append(file.Topics[subject], topicEntry[T]{Topic: topic, Items: items})
		}
		if fb := s.FallbackFor(subject); len(fb) > 0 {
			file.Fallback[subject] = fb
		}
	}
	return file
}
