package engine

// stopwords are excluded from heuristic vocabulary selection.
var stopwords = map[string]bool{
	"a": true, "about": true, "after": true, "again": true, "all": true,
	"also": true, "am": true, "an": true, "and": true, "any": true,
	"are": true, "as": true, "at": true, "be": true, "because": true,
	"been": true, "before": true, "being": true, "but": true, "by": true,
	"can": true, "could": true, "did": true, "do": true, "does": true,
	"doing": true, "don": true, "down": true, "for": true, "from": true,
	"get": true, "go": true, "going": true, "good": true, "got": true,
	"had": true, "has": true, "have": true, "he": true, "her": true,
	"here": true, "him": true, "his": true, "how": true, "i": true,
	"if": true, "in": true, "into": true, "is": true, "it": true,
	"its": true, "just": true, "know": true, "let": true, "like": true,
	"make": true, "me": true, "more": true, "my": true, "no": true,
	"not": true, "now": true, "of": true, "off": true, "ok": true,
	"okay": true, "on": true, "one": true, "only": true, "or": true,
	"our": true, "out": true, "over": true, "really": true, "right": true,
	"say": true, "see": true, "she": true, "so": true, "some": true,
	"than": true, "that": true, "the": true, "their": true, "them": true,
	"then": true, "there": true, "these": true, "they": true, "this": true,
	"those": true, "time": true, "to": true, "too": true, "up": true,
	"us": true, "very": true, "want": true, "was": true, "we": true,
	"well": true, "were": true, "what": true, "when": true, "where": true,
	"which": true, "who": true, "why": true, "will": true, "with": true,
	"would": true, "yeah": true, "yes": true, "you": true, "your": true,
}
