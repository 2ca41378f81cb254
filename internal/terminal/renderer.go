package terminal

import (
	"fmt"
	"io"
	"strings"

	"ai-docqa-client/internal/constant"
	"ai-docqa-client/internal/dto"

	"github.com/fatih/color"
)

// Renderer writes presenter views to a terminal.
type Renderer struct {
	out io.Writer

	title   *color.Color
	prompt  *color.Color
	answer  *color.Color
	source  *color.Color
	ok      *color.Color
	warn    *color.Color
	failure *color.Color
	muted   *color.Color
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:     out,
		title:   color.New(color.FgCyan, color.Bold),
		prompt:  color.New(color.FgBlue, color.Bold),
		answer:  color.New(color.FgWhite),
		source:  color.New(color.FgMagenta),
		ok:      color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		failure: color.New(color.FgRed),
		muted:   color.New(color.FgHiBlack),
	}
}

func (r *Renderer) Banner(backendURL string) {
	r.title.Fprintln(r.out, "Document QA")
	r.muted.Fprintf(r.out, "backend: %s, type /help for commands\n\n", backendURL)
}

func (r *Renderer) Help() {
	r.title.Fprintln(r.out, "Commands")
	for _, line := range []string{
		"<text>          ask a question about your documents",
		"/upload <path>  upload a PDF, DOCX or PPTX file",
		"/docs           show the document list",
		"/refresh        reload the document list",
		"/reindex        reindex every document",
		"/sources        show or hide sources of the last answer",
		"/reset          start a new conversation",
		"/quit           exit",
	} {
		fmt.Fprintf(r.out, "  %s\n", line)
	}
	fmt.Fprintln(r.out)
}

func (r *Renderer) Prompt() {
	r.prompt.Fprint(r.out, "you> ")
}

func (r *Renderer) Pending() {
	r.muted.Fprintln(r.out, "thinking...")
}

// Turn prints one assistant turn and, when shown, its sources.
func (r *Renderer) Turn(turn dto.TurnResponse) {
	if turn.Role != constant.ChatRoleAssistant {
		return
	}
	fmt.Fprintln(r.out, strings.Repeat("-", 60))
	r.answer.Fprintln(r.out, turn.Content)
	if turn.ShowSources {
		r.Sources(turn)
	}
	fmt.Fprintln(r.out, strings.Repeat("-", 60))
}

func (r *Renderer) Sources(turn dto.TurnResponse) {
	r.source.Fprintln(r.out, turn.SourcesLabel)
	for _, s := range turn.Sources {
		r.source.Fprintf(r.out, "  %s [%s]  ", s.Source, s.ChunkId)
		r.muted.Fprintln(r.out, s.RelevanceLabel)
	}
}

func (r *Renderer) Corpus(view dto.CorpusResponse) {
	if view.IsLoading {
		r.muted.Fprintln(r.out, "Loading documents...")
		return
	}
	r.Status(view.Message, view.IsError)
	if view.Reindexing {
		r.muted.Fprintln(r.out, "Reindexing...")
	}
	if view.Empty {
		r.muted.Fprintln(r.out, "No documents uploaded yet")
		return
	}

	r.title.Fprintln(r.out, "Documents")
	for _, d := range view.Documents {
		marker := r.warn.Sprint("○")
		if d.Indexed {
			marker = r.ok.Sprint("●")
		}
		fmt.Fprintf(r.out, "  %s %s ", marker, d.Filename)
		r.muted.Fprintln(r.out, d.SizeLabel)
	}
}

func (r *Renderer) Upload(view dto.UploadStateResponse) {
	r.Status(view.Message, view.IsError)
}

func (r *Renderer) Status(message string, isError bool) {
	if message == "" {
		return
	}
	if isError {
		r.failure.Fprintln(r.out, message)
		return
	}
	r.ok.Fprintln(r.out, message)
}

func (r *Renderer) Info(message string) {
	r.muted.Fprintln(r.out, message)
}

func (r *Renderer) Error(err error) {
	r.failure.Fprintf(r.out, "Error: %v\n", err)
}
