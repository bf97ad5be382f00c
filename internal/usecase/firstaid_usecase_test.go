package usecase

import (
	"context"
	"strings"
	"testing"

	"hospital-booking/internal/delivery/dto"
	"hospital-booking/internal/domain/entity"
	"hospital-booking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAssistant struct {
	prompts []string
	reply   string
}

func (f *fakeAssistant) Generate(_ context.Context, prompt string) string {
	f.prompts = append(f.prompts, prompt)
	return f.reply
}

func newFirstAid(t *testing.T, env *testEnv, assistant Assistant) FirstAidUsecase {
	return NewFirstAidUsecase(env.db, quietLogger(), repository.NewFirstAidChatRepository(), repository.NewUserRepository(), assistant)
}

func TestAsk_ForwardsPromptWithPreamble(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "asha@example.com")
	assistant := &fakeAssistant{reply: "Rinse with cool water."}

	resp, err := newFirstAid(t, env, assistant).Ask(context.Background(), &dto.FirstAidRequest{
		Prompt: "  minor burn  ",
		UserID: ptr(user.ID),
	})
	require.NoError(t, err)

	require.Len(t, assistant.prompts, 1)
	assert.True(t, strings.HasPrefix(assistant.prompts[0], "You are a first-aid assistant."))
	assert.True(t, strings.HasSuffix(assistant.prompts[0], "\n\nminor burn"))
	assert.Equal(t, "minor burn", resp.Prompt)
	assert.Equal(t, "Rinse with cool water.", resp.Response)

	var chat entity.FirstAidChat
	require.NoError(t, env.db.First(&chat, "id = ?", resp.ID).Error)
	assert.Equal(t, "minor burn", chat.Prompt)
	require.NotNil(t, chat.UserID)
	assert.Equal(t, user.ID, *chat.UserID)
}

func TestAsk_FallbackReplyIsLogged(t *testing.T) {
	env := newTestEnv(t)
	assistant := &fakeAssistant{reply: "Gemini API key missing."}

	resp, err := newFirstAid(t, env, assistant).Ask(context.Background(), &dto.FirstAidRequest{
		Prompt: "snake bite",
		UserID: ptr("not-a-user"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Gemini API key missing.", resp.Response)

	var chat entity.FirstAidChat
	require.NoError(t, env.db.First(&chat, "id = ?", resp.ID).Error)
	assert.Nil(t, chat.UserID)
	assert.Equal(t, "Gemini API key missing.", chat.Response)
}

func TestAsk_EmptyPrompt(t *testing.T) {
	env := newTestEnv(t)
	assistant := &fakeAssistant{}

	_, err := newFirstAid(t, env, assistant).Ask(context.Background(), &dto.FirstAidRequest{Prompt: "   "})
	assert.ErrorIs(t, err, ErrPromptRequired)
	assert.Empty(t, assistant.prompts)
}
