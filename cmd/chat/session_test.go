package main

import (
	"bytes"
	"chatty/mocks"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/peterh/liner"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// scriptedPrompter replays lines as if typed at the prompt, then returns end.
type scriptedPrompter struct {
	out     io.Writer
	lines   []string
	end     error
	history []string
}

func (p *scriptedPrompter) Prompt(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if len(p.lines) == 0 {
		return "", p.end
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

func (p *scriptedPrompter) AppendHistory(item string) {
	p.history = append(p.history, item)
}

func TestSession_Run(t *testing.T) {
	color.Disable()

	tests := []struct {
		name     string
		lines    []string
		end      error
		setup    func(chat *mocks.MockIChatService)
		expected []string
		absent   []string
		history  []string
	}{
		{
			name:  "Answers until end of input",
			lines: []string{"Hi", "What's the weather in Paris?"},
			end:   io.EOF,
			setup: func(chat *mocks.MockIChatService) {
				gomock.InOrder(
					chat.EXPECT().HandleMessage(gomock.Any(), "Hi").Return("Hello!"),
					chat.EXPECT().HandleMessage(gomock.Any(), "What's the weather in Paris?").
						Return("The current temperature in Paris is 18.5°C with clear sky."),
				)
			},
			expected: []string{
				"Chatty: " + welcome,
				"You: Chatty: Hello!",
				"Chatty: The current temperature in Paris is 18.5°C with clear sky.",
			},
			absent:  []string{"Goodbye"},
			history: []string{"Hi", "What's the weather in Paris?"},
		},
		{
			name:  "Quit stops the session",
			lines: []string{"Hi", "QUIT", "Hi again"},
			end:   io.EOF,
			setup: func(chat *mocks.MockIChatService) {
				chat.EXPECT().HandleMessage(gomock.Any(), "Hi").Return("Hello!")
			},
			expected: []string{"Chatty: Hello!", "Chatty: Goodbye!"},
			history:  []string{"Hi"},
		},
		{
			name:  "Ctrl-C at the prompt says goodbye",
			lines: []string{"Hi"},
			end:   liner.ErrPromptAborted,
			setup: func(chat *mocks.MockIChatService) {
				chat.EXPECT().HandleMessage(gomock.Any(), "Hi").Return("Hello!")
			},
			expected: []string{"Chatty: Hello!", "Chatty: Goodbye!"},
			history:  []string{"Hi"},
		},
		{
			name:  "Blank answer prints nothing and is not remembered",
			lines: []string{"   "},
			end:   io.EOF,
			setup: func(chat *mocks.MockIChatService) {
				chat.EXPECT().HandleMessage(gomock.Any(), "   ").Return("")
			},
			expected: []string{"Chatty: " + welcome},
			absent:   []string{"Goodbye"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			chat := mocks.NewMockIChatService(ctrl)
			tt.setup(chat)

			var out bytes.Buffer
			prompter := &scriptedPrompter{out: &out, lines: tt.lines, end: tt.end}
			err := NewSession(prompter, &out, chat).Run(context.Background())
			req.NoError(err)
			for _, expected := range tt.expected {
				req.Contains(out.String(), expected)
			}
			for _, absent := range tt.absent {
				req.NotContains(out.String(), absent)
			}
			req.Equal(1, strings.Count(out.String(), welcome))
			req.Equal(tt.history, prompter.history)
		})
	}
}

func TestSession_Run_Input_Failure(t *testing.T) {
	req := require.New(t)
	color.Disable()
	ctrl := gomock.NewController(t)
	chat := mocks.NewMockIChatService(ctrl)
	errClosed := fmt.Errorf("terminal closed")

	prompter := &scriptedPrompter{out: io.Discard, end: errClosed}
	err := NewSession(prompter, io.Discard, chat).Run(context.Background())
	req.ErrorIs(err, errClosed)
}

func TestSession_Run_Stops_On_Cancel(t *testing.T) {
	req := require.New(t)
	color.Disable()
	ctrl := gomock.NewController(t)
	chat := mocks.NewMockIChatService(ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	chat.EXPECT().HandleMessage(gomock.Any(), "What's the news?").
		DoAndReturn(func(context.Context, string) string {
			cancel()
			return "Lookup cancelled."
		})

	var out bytes.Buffer
	prompter := &scriptedPrompter{out: &out, lines: []string{"What's the news?", "Hi"}, end: io.EOF}
	req.NoError(NewSession(prompter, &out, chat).Run(ctx))
	req.Contains(out.String(), "Chatty: Lookup cancelled.")
	req.Equal([]string{"Hi"}, prompter.lines)
}
