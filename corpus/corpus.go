package corpus

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedHeader indicates a missing or non-integer header count.
	ErrMalformedHeader = errors.New("corpus: malformed header")
	// ErrMalformedLine indicates a record that is not three integers.
	ErrMalformedLine = errors.New("corpus: malformed record")
	// ErrIDOutOfRange indicates a text or word id outside the declared counts.
	ErrIDOutOfRange = errors.New("corpus: id out of range")
	// ErrTruncated indicates fewer records than the header declared.
	ErrTruncated = errors.New("corpus: truncated input")
)

// Default frequency bounds.
const (
	DefaultLowerBound = 2
	DefaultUpperBound = 10
)

// Token is one word occurrence record kept on a text.
type Token struct {
	Word      int // 0-based word id
	Frequency int
}

// Corpus is a parsed and filtered document collection.
type Corpus struct {
	words  int
	texts  [][]Token
	totals []int
	lower  int
	upper  int
}

type config struct {
	lower, upper int
}

// Option configures Parse.
type Option func(*config)

// WithFrequencyBounds sets the inclusive word frequency window. Panics if
// lower > upper.
func WithFrequencyBounds(lower, upper int) Option {
	if lower > upper {
		panic("corpus: WithFrequencyBounds(lower > upper)")
	}
	return func(c *config) {
		c.lower, c.upper = lower, upper
	}
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string, opts ...Option) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open corpus %s", path)
	}
	defer f.Close()

	c, err := Parse(f, opts...)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}

	return c, nil
}

// Parse reads a corpus from r and applies the frequency sieve.
func Parse(r io.Reader, opts ...Option) (*Corpus, error) {
	cfg := config{lower: DefaultLowerBound, upper: DefaultUpperBound}
	for _, opt := range opts {
		opt(&cfg)
	}

	sc := &scanner{s: bufio.NewScanner(r)}
	sc.s.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var header [3]int
	for i, name := range []string{"text count", "word count", "record count"} {
		line, ok := sc.next()
		if !ok {
			if err := sc.s.Err(); err != nil {
				return nil, errors.Wrap(err, "read header")
			}
			return nil, errors.Wrapf(ErrMalformedHeader, "missing %s", name)
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || v < 0 {
			return nil, errors.Wrapf(ErrMalformedHeader, "line %d: %s %q", sc.line, name, line)
		}
		header[i] = v
	}
	nTexts, nWords, nLines := header[0], header[1], header[2]

	c := &Corpus{
		words:  nWords,
		texts:  make([][]Token, nTexts),
		totals: make([]int, nWords),
		lower:  cfg.lower,
		upper:  cfg.upper,
	}

	for rec := 0; rec < nLines; rec++ {
		line, ok := sc.next()
		if !ok {
			if err := sc.s.Err(); err != nil {
				return nil, errors.Wrap(err, "read records")
			}
			return nil, errors.Wrapf(ErrTruncated, "got %d of %d records", rec, nLines)
		}
		text, word, freq, err := parseRecord(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", sc.line)
		}
		if text < 1 || text > nTexts || word < 1 || word > nWords {
			return nil, errors.Wrapf(ErrIDOutOfRange, "line %d: text %d of %d, word %d of %d", sc.line, text, nTexts, word, nWords)
		}

		c.totals[word-1] += freq
		if freq <= c.upper {
			c.texts[text-1] = append(c.texts[text-1], Token{Word: word - 1, Frequency: freq})
		}
	}

	c.sieve()

	return c, nil
}

func parseRecord(line string) (text, word, freq int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, errors.Wrapf(ErrMalformedLine, "want 3 fields, got %d", len(fields))
	}
	var vals [3]int
	for i, f := range fields {
		if vals[i], err = strconv.Atoi(f); err != nil {
			return 0, 0, 0, errors.Wrapf(ErrMalformedLine, "field %d %q", i+1, f)
		}
	}

	return vals[0], vals[1], vals[2], nil
}

// sieve drops kept tokens whose word total falls outside [lower, upper].
func (c *Corpus) sieve() {
	for i, tokens := range c.texts {
		kept := tokens[:0]
		for _, tok := range tokens {
			if total := c.totals[tok.Word]; total >= c.lower && total <= c.upper {
				kept = append(kept, tok)
			}
		}
		c.texts[i] = kept
	}
}

// Len returns the number of texts.
func (c *Corpus) Len() int { return len(c.texts) }

// Dimensions returns the vocabulary size, i.e. the length of every vector.
func (c *Corpus) Dimensions() int { return c.words }

// Tokens returns the filtered tokens of text i (0-based). The slice must
// not be modified.
func (c *Corpus) Tokens(i int) []Token { return c.texts[i] }

// WordTotal returns the corpus-wide frequency of word w (0-based),
// counted before any filtering.
func (c *Corpus) WordTotal(w int) int { return c.totals[w] }

// Vectors returns one dense frequency vector per text: entry w is the sum
// of the frequencies of the text's surviving tokens for word w.
func (c *Corpus) Vectors() [][]float64 {
	out := make([][]float64, len(c.texts))
	for i, tokens := range c.texts {
		v := make([]float64, c.words)
		for _, tok := range tokens {
			v[tok.Word] += float64(tok.Frequency)
		}
		out[i] = v
	}

	return out
}

// scanner yields non-blank lines and tracks the 1-based line number.
type scanner struct {
	s    *bufio.Scanner
	line int
}

func (sc *scanner) next() (string, bool) {
	for sc.s.Scan() {
		sc.line++
		if text := sc.s.Text(); strings.TrimSpace(text) != "" {
			return text, true
		}
	}

	return "", false
}
