package slack

import (
	"strings"
	"testing"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	t.Run("full layout", func(t *testing.T) {
		blocks := BuildMessage(MessageInput{
			Header: "Recording ready",
			Body:   "Your call with *Acme Corp* has been processed.",
			Fields: []Field{
				{Label: "Duration", Value: "31m"},
				{Label: "Platform", Value: "zoom"},
			},
			Buttons: []Button{
				{Text: "Watch recording", URL: "https://app.example.com/recordings/rec-1"},
			},
		})

		require.Len(t, blocks, 4)

		header, ok := blocks[0].(*goslack.HeaderBlock)
		require.True(t, ok)
		assert.Equal(t, "Recording ready", header.Text.Text)

		body, ok := blocks[1].(*goslack.SectionBlock)
		require.True(t, ok)
		assert.Contains(t, body.Text.Text, "Acme Corp")

		fields, ok := blocks[2].(*goslack.SectionBlock)
		require.True(t, ok)
		require.Len(t, fields.Fields, 2)
		assert.Contains(t, fields.Fields[0].Text, "*Duration:*")
		assert.Contains(t, fields.Fields[1].Text, "zoom")

		actions, ok := blocks[3].(*goslack.ActionBlock)
		require.True(t, ok)
		require.Len(t, actions.Elements.ElementSet, 1)
		btn, ok := actions.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
		require.True(t, ok)
		assert.Equal(t, "Watch recording", btn.Text.Text)
		assert.Equal(t, "https://app.example.com/recordings/rec-1", btn.URL)
	})

	t.Run("body only", func(t *testing.T) {
		blocks := BuildMessage(MessageInput{Body: "Just a heads up."})
		require.Len(t, blocks, 1)
		_, ok := blocks[0].(*goslack.SectionBlock)
		assert.True(t, ok)
	})

	t.Run("length limits applied", func(t *testing.T) {
		blocks := BuildMessage(MessageInput{
			Header: strings.Repeat("h", HeaderLimit+50),
			Body:   strings.Repeat("b", TextLimit+50),
			Buttons: []Button{
				{Text: strings.Repeat("t", ButtonTextLimit+50), Value: strings.Repeat("v", ButtonValueLimit+50)},
			},
		})

		header := blocks[0].(*goslack.HeaderBlock)
		assert.Equal(t, HeaderLimit, utf8.RuneCountInString(header.Text.Text))

		body := blocks[1].(*goslack.SectionBlock)
		assert.Equal(t, TextLimit, utf8.RuneCountInString(body.Text.Text))

		actions := blocks[2].(*goslack.ActionBlock)
		btn := actions.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
		assert.Equal(t, ButtonTextLimit, utf8.RuneCountInString(btn.Text.Text))
		assert.Equal(t, ButtonValueLimit, utf8.RuneCountInString(btn.Value))
	})
}

func TestParseBlocks(t *testing.T) {
	t.Run("decodes producer blocks", func(t *testing.T) {
		raw := []byte(`[
			{"type": "header", "text": {"type": "plain_text", "text": "Action items"}},
			{"type": "section", "text": {"type": "mrkdwn", "text": "1. Send the proposal"}}
		]`)

		blocks, err := ParseBlocks(raw)
		require.NoError(t, err)
		require.Len(t, blocks, 2)

		header, ok := blocks[0].(*goslack.HeaderBlock)
		require.True(t, ok)
		assert.Equal(t, "Action items", header.Text.Text)
	})

	t.Run("applies limits to parsed blocks", func(t *testing.T) {
		long := strings.Repeat("x", HeaderLimit+20)
		raw := []byte(`[{"type": "header", "text": {"type": "plain_text", "text": "` + long + `"}}]`)

		blocks, err := ParseBlocks(raw)
		require.NoError(t, err)

		header := blocks[0].(*goslack.HeaderBlock)
		assert.Equal(t, HeaderLimit, utf8.RuneCountInString(header.Text.Text))
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		_, err := ParseBlocks([]byte(`{"not": "an array"`))
		require.Error(t, err)
	})
}

func TestLimitBlocks(t *testing.T) {
	section := goslack.NewSectionBlock(
		goslack.NewTextBlockObject(goslack.MarkdownType, strings.Repeat("s", TextLimit+10), false, false),
		[]*goslack.TextBlockObject{
			goslack.NewTextBlockObject(goslack.MarkdownType, strings.Repeat("f", FieldLimit+10), false, false),
		},
		nil,
	)

	LimitBlocks([]goslack.Block{section})

	assert.Equal(t, TextLimit, utf8.RuneCountInString(section.Text.Text))
	assert.Equal(t, FieldLimit, utf8.RuneCountInString(section.Fields[0].Text))
}
