// Package repo provides postgres access for the dashboard allow-list
package repo

import (
	"context"

	"cubewars/internal/modkit/repokit"
	"cubewars/internal/platform/store"
)

// Repo is the minimal persistence surface for auth
type Repo interface {
	AllowedEmails(ctx context.Context) ([]string, error)
}

type (
	// PG is a binder that binds the repo to a Queryer
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that binds the repo to a Queryer
func NewPG() repokit.Binder[repokit.Queryer, Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) AllowedEmails(ctx context.Context) ([]string, error) {
	const sql = `
select lower(trim(email))
from dashboard_allowed_emails
where enabled
order by 1
`
	return store.Many(ctx, r.q, scanEmail, sql)
}

func scanEmail(row store.Row) (string, error) {
	var email string
	err := row.Scan(&email)
	return email, err
}
