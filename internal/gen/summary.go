package gen

import (
	"regexp"
	"strings"
)

// Markup emitted by the upstream extractor inside summary and description
// fields. Only these categories appear in practice; anything else passes
// through untouched.
var (
	xrefRe         = regexp.MustCompile(`<xref href="(.+?)" data-throw-if-not-resolved="false"></xref>`)
	langwordXrefRe = regexp.MustCompile(`<xref uid="langword_csharp_.+?" name="(.+?)" href=""></xref>`)
	codeBlockRe    = regexp.MustCompile(`(?s)<pre><code class="lang-csharp">(.+?)</code></pre>`)
	codeRe         = regexp.MustCompile(`<code>(.+?)</code>`)
	linkRe         = regexp.MustCompile(`<a href="(.+?)">(.+?)</a>`)
	brRe           = regexp.MustCompile(`<br */?>`)
)

// processSummary rewrites extractor markup into markdown, resolving every
// embedded cross-reference through res in the calling page's context. The
// result is HTML-entity escaped as a final pass.
func (rn *Renderer) processSummary(text string, res *Resolver, lc LinkContext) string {
	if text == "" {
		return ""
	}

	text = xrefRe.ReplaceAllStringFunc(text, func(m string) string {
		uid := xrefRe.FindStringSubmatch(m)[1]
		return res.Link(uid, lc)
	})
	text = langwordXrefRe.ReplaceAllString(text, "`$1`")
	text = codeBlockRe.ReplaceAllStringFunc(text, func(m string) string {
		code := codeBlockRe.FindStringSubmatch(m)[1]
		return "```csharp\n" + strings.TrimSpace(code) + "\n```"
	})
	text = codeRe.ReplaceAllString(text, "`$1`")
	text = linkRe.ReplaceAllString(text, "[$2]($1)")
	text = brRe.ReplaceAllString(text, rn.cfg.BrNewline)

	if rn.cfg.ForceNewline {
		text = strings.ReplaceAll(text, "\n", rn.cfg.ForcedNewline)
	}

	return htmlEscape(text)
}
