package controllers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/oakmere/gatehouse/internal/controllers"
	"github.com/oakmere/gatehouse/internal/forms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForgotSubmitValidationBlocks(t *testing.T) {
	api := &mockAuthAPI{}
	ctrl := controllers.NewForgotPassword(controllers.ForgotConfig{Client: api})

	ctrl.SetEmail("not-an-email")
	ctrl.Submit(context.Background())

	snap := ctrl.Snapshot()
	require.NotNil(t, snap.EmailError)
	assert.Equal(t, forms.CodeInvalidFormat, snap.EmailError.Code)

	_, requests, _ := api.calls()
	assert.Zero(t, requests)
}

func TestForgotSubmitShowsFixedNotice(t *testing.T) {
	t.Run("on success", func(t *testing.T) {
		api := &mockAuthAPI{}
		ctrl := controllers.NewForgotPassword(controllers.ForgotConfig{Client: api})

		ctrl.SetEmail("a@b.com")
		ctrl.Submit(context.Background())

		snap := ctrl.Snapshot()
		assert.Equal(t, controllers.PhaseSuccess, snap.Phase)
		assert.Equal(t, controllers.MsgResetRequested, snap.Notice)
	})

	t.Run("on API failure, hiding the outcome", func(t *testing.T) {
		api := &mockAuthAPI{
			requestResetFn: func(ctx context.Context, email string) error {
				return errors.New("no such account")
			},
		}
		ctrl := controllers.NewForgotPassword(controllers.ForgotConfig{Client: api})

		ctrl.SetEmail("a@b.com")
		ctrl.Submit(context.Background())

		// The user must not be able to tell whether the account exists.
		snap := ctrl.Snapshot()
		assert.Equal(t, controllers.PhaseSuccess, snap.Phase)
		assert.Equal(t, controllers.MsgResetRequested, snap.Notice)
	})
}

func TestForgotSnapshotPhases(t *testing.T) {
	api := &mockAuthAPI{}
	publisher := &mockPublisher{}
	ctrl := controllers.NewForgotPassword(controllers.ForgotConfig{Client: api, Publisher: publisher})

	ctrl.SetEmail("a@b.com")
	ctrl.Submit(context.Background())

	assert.Equal(t, []string{"validating", "submitting", "success"}, publisher.phases())
}
