package chat_test

import (
	"context"
	"testing"
	"time"

	"github.com/mediai-platform/mediai/chat"
	"github.com/stretchr/testify/require"
)

func TestThreads_OrderAndUnread(t *testing.T) {
	h := chat.NewHub()

	threads := h.Threads()
	require.Len(t, threads, 3)
	// Most recent activity first.
	require.Equal(t, "Robert Chen", threads[0].Patient)

	require.Equal(t, 2, h.UnreadCount())
}

func TestSearchThreads(t *testing.T) {
	h := chat.NewHub()
	require.Len(t, h.SearchThreads("asthma"), 1)
	require.Len(t, h.SearchThreads("miller"), 1)
	require.Empty(t, h.SearchThreads("oncology"))
}

func TestOpen_MarksRead(t *testing.T) {
	h := chat.NewHub()

	thread, err := h.Open("patient-1")
	require.NoError(t, err)
	require.Equal(t, 0, thread.Unread)
	require.Len(t, thread.Messages, 2)
	require.Equal(t, 1, h.UnreadCount())

	_, err = h.Open("patient-99")
	require.ErrorIs(t, err, chat.ErrThreadNotFound)
}

func TestSend_AppendsAndSchedulesCannedReply(t *testing.T) {
	h := chat.NewHub(
		chat.WithReplyDelay(5*time.Millisecond),
		chat.WithPick(func(n int) int { return 0 }),
	)

	msg, err := h.Send(context.Background(), "patient-2", "Your latest labs look good.")
	require.NoError(t, err)
	require.Equal(t, chat.SenderDoctor, msg.Sender)

	require.Eventually(t, func() bool {
		thread, err := h.Open("patient-2")
		require.NoError(t, err)
		last := thread.Messages[len(thread.Messages)-1]
		return last.Sender == chat.SenderPatient && last.Text == "Thank you doctor, I'll do that."
	}, time.Second, 2*time.Millisecond)
}

func TestSend_Validation(t *testing.T) {
	h := chat.NewHub()

	_, err := h.Send(context.Background(), "patient-1", "   ")
	require.Error(t, err)

	_, err = h.Send(context.Background(), "patient-99", "hello")
	require.ErrorIs(t, err, chat.ErrThreadNotFound)
}

func TestSend_CancelledContextSkipsReply(t *testing.T) {
	h := chat.NewHub(chat.WithReplyDelay(20 * time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	_, err := h.Send(ctx, "patient-3", "How is the new inhaler working?")
	require.NoError(t, err)
	cancel()

	time.Sleep(50 * time.Millisecond)
	thread, err := h.Open("patient-3")
	require.NoError(t, err)
	last := thread.Messages[len(thread.Messages)-1]
	require.Equal(t, chat.SenderDoctor, last.Sender)
}
