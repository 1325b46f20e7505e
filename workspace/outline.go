package workspace

import "strings"

// Block is one node of a document's marker outline: where a
// `$begin '<name>'`/`$end '<name>'` pair sits and what it contains.
// The outline carries positions, which the value decoder deliberately
// does not, so editors get ranges without changing the parse contract.
type Block struct {
	Name      string
	StartLine int // line of the $begin marker, 0-based
	EndLine   int // line of the matching $end marker; last line when unclosed
	Children  []*Block
}

// Problem is a structural complaint about marker pairing. The value
// decoder absorbs these silently; editors want to see them.
type Problem struct {
	Line    int
	Message string
}

// Scan builds the block outline of document content. Mismatched or
// missing markers are reported as problems and the enclosing block is
// closed anyway, so a single typo does not collapse the whole outline.
func Scan(content []byte) ([]*Block, []Problem) {
	lines := strings.Split(string(content), "\n")
	var roots []*Block
	var stack []*Block
	var problems []Problem

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if name, ok := markerName(line, "$begin '"); ok {
			block := &Block{Name: name, StartLine: i, EndLine: len(lines) - 1}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, block)
			} else {
				roots = append(roots, block)
			}
			stack = append(stack, block)
			continue
		}
		name, ok := markerName(line, "$end '")
		if !ok {
			continue
		}
		if len(stack) == 0 {
			problems = append(problems, Problem{
				Line:    i,
				Message: "$end '" + name + "' without a matching $begin",
			})
			continue
		}
		top := stack[len(stack)-1]
		if top.Name != name {
			problems = append(problems, Problem{
				Line:    i,
				Message: "$end '" + name + "' closes block '" + top.Name + "'",
			})
		}
		top.EndLine = i
		stack = stack[:len(stack)-1]
	}

	for _, open := range stack {
		problems = append(problems, Problem{
			Line:    open.StartLine,
			Message: "block '" + open.Name + "' is never closed",
		})
	}
	return roots, problems
}

func markerName(line, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(line, prefix)
	if !ok {
		return "", false
	}
	name, ok := strings.CutSuffix(rest, "'")
	if !ok || name == "" {
		return "", false
	}
	return name, true
}
