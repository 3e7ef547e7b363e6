package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/mdterp/internal/dbx"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/attachments"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/chatmessages"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/clients"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/comments"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/contracts"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/items"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/measurements"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/tasks"
)

// RepositoryManager vends repositories bound to either the pool or a
// transaction, so services can choose per call.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Profiles(db dbx.DBTX) profiles.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Clients(db dbx.DBTX) clients.Repository
	Contracts(db dbx.DBTX) contracts.Repository
	Items(db dbx.DBTX) items.Repository
	Measurements(db dbx.DBTX) measurements.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	Comments(db dbx.DBTX, target comments.Target) comments.Repository
	Attachments(db dbx.DBTX, target attachments.Target) attachments.Repository
	ChatMessages(db dbx.DBTX) chatmessages.Repository
}
