package pipeline

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// maxHeaderLevel is the deepest ATX header; longer # runs are paragraph text.
const maxHeaderLevel = 6

// sourceLine is one input line without its line terminator.
type sourceLine struct {
	text   string
	num    int // 1-based
	offset int
}

func (l sourceLine) blank() bool {
	return util.IsBlank([]byte(l.text))
}

// Scan segments input into blocks. The whole input is either matched or
// rejected with a *SyntaxError wrapping ErrGrammar.
func Scan(input string) ([]Block, error) {
	if off := invalidUTF8Offset(input); off >= 0 {
		return nil, &SyntaxError{
			Line:   1 + strings.Count(input[:off], "\n"),
			Offset: off,
			Msg:    "invalid UTF-8 sequence",
			Err:    ErrGrammar,
		}
	}

	s := &scanner{lines: splitLines([]byte(input))}
	return s.scan(), nil
}

// invalidUTF8Offset returns the byte offset of the first invalid UTF-8
// sequence, or -1 if the input is valid.
func invalidUTF8Offset(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// splitLines reads source line by line, dropping "\n" and "\r\n" terminators.
func splitLines(source []byte) []sourceLine {
	reader := text.NewReader(source)
	var lines []sourceLine
	for num := 1; ; num++ {
		line, seg := reader.PeekLine()
		if line == nil {
			break
		}
		s := strings.TrimSuffix(string(line), "\n")
		s = strings.TrimSuffix(s, "\r")
		lines = append(lines, sourceLine{text: s, num: num, offset: seg.Start})
		reader.AdvanceLine()
	}
	return lines
}

// scanner classifies lines into blocks. At every line boundary it tries,
// in order: blank, ATX header, setext header, raw tag, paragraph.
type scanner struct {
	lines  []sourceLine
	pos    int
	blocks []Block
}

func (s *scanner) scan() []Block {
	for s.pos < len(s.lines) {
		switch line := s.lines[s.pos]; {
		case line.blank():
			s.pos++
		case s.atxHeader():
		case s.setextHeader():
		case isRawTagStart(line.text):
			s.rawTag()
		default:
			s.paragraph()
		}
	}
	return s.blocks
}

// atxHeader consumes a "# Title" line.
func (s *scanner) atxHeader() bool {
	line := s.lines[s.pos]
	level, rest, ok := atxLevel(line.text)
	if !ok {
		return false
	}
	s.blocks = append(s.blocks, Block{
		Kind:   KindHeader,
		Level:  level,
		Text:   rest,
		Line:   line.num,
		Offset: line.offset,
	})
	s.pos++
	return true
}

// setextHeader consumes a text line and its "===" or "---" underline.
func (s *scanner) setextHeader() bool {
	if !s.startsSetext(s.pos) {
		return false
	}
	line := s.lines[s.pos]
	level, _ := setextLevel(s.lines[s.pos+1].text)
	s.blocks = append(s.blocks, Block{
		Kind:   KindHeader,
		Level:  level,
		Text:   line.text,
		Line:   line.num,
		Offset: line.offset,
	})
	s.pos += 2
	return true
}

// rawTag consumes a leading "<" line and the lines after it, up to a blank
// line or, once every tag opened so far is closed, a line that does not
// start with "<".
func (s *scanner) rawTag() {
	first := s.lines[s.pos]
	last := s.pos + 1
	for last < len(s.lines) && !s.lines[last].blank() {
		last++
	}

	texts := make([]string, 0, last-s.pos)
	for _, l := range s.lines[s.pos:last] {
		texts = append(texts, l.text)
	}
	balanced := balancedLineEnds(strings.Join(texts, "\n"))

	n, end := 1, len(texts[0])
	for ; n < len(texts); n++ {
		if balanced[end] && !isRawTagStart(texts[n]) {
			break
		}
		end += 1 + len(texts[n])
	}

	s.blocks = append(s.blocks, Block{
		Kind:   KindRawTag,
		HTML:   strings.Join(texts[:n], "\n"),
		Line:   first.num,
		Offset: first.offset,
	})
	s.pos += n
}

// paragraph consumes the longest run of lines that start no other block.
func (s *scanner) paragraph() {
	first := s.lines[s.pos]
	var lines []string
	for s.pos < len(s.lines) {
		line := s.lines[s.pos]
		if line.blank() || (len(lines) > 0 && s.startsBlock(s.pos)) {
			break
		}
		lines = append(lines, line.text)
		s.pos++
	}
	s.blocks = append(s.blocks, Block{
		Kind:   KindParagraph,
		Lines:  lines,
		Line:   first.num,
		Offset: first.offset,
	})
}

// startsBlock reports whether line i opens a header or raw tag block.
func (s *scanner) startsBlock(i int) bool {
	text := s.lines[i].text
	if _, _, ok := atxLevel(text); ok {
		return true
	}
	return s.startsSetext(i) || isRawTagStart(text)
}

// startsSetext reports whether line i is the text line of a setext header.
func (s *scanner) startsSetext(i int) bool {
	if i+1 >= len(s.lines) {
		return false
	}
	line := s.lines[i]
	if line.blank() || isRawTagStart(line.text) {
		return false
	}
	if _, _, ok := atxLevel(line.text); ok {
		return false
	}
	_, ok := setextLevel(s.lines[i+1].text)
	return ok
}

// atxLevel returns the level and remaining text of an ATX header line:
// 1-6 '#' followed by whitespace.
func atxLevel(line string) (level int, rest string, ok bool) {
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > maxHeaderLevel {
		return 0, "", false
	}
	if level == len(line) || !util.IsSpace(line[level]) {
		return 0, "", false
	}
	return level, line[level:], true
}

// setextLevel recognizes an underline made of a single repeated '=' (level 1)
// or '-' (level 2), with optional trailing whitespace.
func setextLevel(line string) (int, bool) {
	underline := util.TrimRightSpace([]byte(line))
	if len(underline) == 0 {
		return 0, false
	}
	marker := underline[0]
	if marker != '=' && marker != '-' {
		return 0, false
	}
	for _, c := range underline {
		if c != marker {
			return 0, false
		}
	}
	if marker == '=' {
		return 1, true
	}
	return 2, true
}

// isRawTagStart reports whether the first non-space character is '<'.
func isRawTagStart(line string) bool {
	trimmed := util.TrimLeftSpace([]byte(line))
	return len(trimmed) > 0 && trimmed[0] == '<'
}
