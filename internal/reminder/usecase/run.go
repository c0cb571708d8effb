package usecase

import (
	"context"

	"student-productivity/internal/reminder"
)

func (uc *implUseCase) Run(ctx context.Context) (reminder.RunOutput, error) {
	users, err := uc.users.ListUsers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Run ListUsers: %v", err)
		return reminder.RunOutput{}, err
	}

	out := reminder.RunOutput{Users: len(users)}
	for _, u := range users {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		digest, err := uc.BuildDigest(ctx, u)
		if err != nil {
			out.Failed++
			continue
		}
		if digest.Empty() {
			out.Empty++
			continue
		}

		if err := uc.mailer.Send(ctx, renderMessage(uc.checklist, digest)); err != nil {
			uc.l.Warnf(ctx, "uc.Run Send to %s: %v", u.ID, err)
			out.Failed++
			continue
		}
		out.Sent++
	}

	uc.l.Infof(ctx, "uc.Run: users=%d sent=%d empty=%d failed=%d", out.Users, out.Sent, out.Empty, out.Failed)
	return out, nil
}
