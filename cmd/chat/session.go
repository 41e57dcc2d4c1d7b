package main

import (
	"chatty/services"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/peterh/liner"
)

const welcome = "Hello! I'm Chatty, your AI assistant. I can help you with weather information " +
	"and answer your questions. Try asking 'What's the weather in London?' or just say hello!"

// liner rejects control characters in prompts, so the user label stays plain.
const prompt = "You: "

var (
	botLabel = color.New(color.FgLightRed, color.OpBold)
	botText  = color.New(color.FgWhite)
)

// Prompter reads one edited line from the user. *liner.State satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// Session is the terminal presentation of the bot: it only reads lines and
// renders answers.
type Session struct {
	line Prompter
	out  io.Writer
	chat services.IChatService
}

func NewSession(line Prompter, out io.Writer, chat services.IChatService) *Session {
	return &Session{line: line, out: out, chat: chat}
}

// Run greets the user then answers line by line until EOF, "quit"/"exit",
// Ctrl-C at the prompt or cancellation of ctx.
func (s *Session) Run(ctx context.Context) error {
	s.answer(welcome)
	for ctx.Err() == nil {
		text, err := s.line.Prompt(prompt)
		switch {
		case err == io.EOF:
			fmt.Fprintln(s.out)
			return nil
		case err == liner.ErrPromptAborted:
			s.answer("Goodbye!")
			return nil
		case err != nil:
			return fmt.Errorf("reading input: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(text)) {
		case "":
		case "quit", "exit":
			s.answer("Goodbye!")
			return nil
		default:
			s.line.AppendHistory(text)
		}
		if response := s.chat.HandleMessage(ctx, text); response != "" {
			s.answer(response)
		}
	}
	return nil
}

func (s *Session) answer(text string) {
	fmt.Fprintf(s.out, "%s%s\n\n", botLabel.Render("Chatty: "), botText.Render(text))
}
