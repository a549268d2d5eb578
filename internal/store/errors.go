package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when a directory lookup expected to
	// match at most one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrOrderNotFound is returned when an update targets an order id that
	// does not exist in the database.
	ErrOrderNotFound = errors.New("order was not found")

	// ErrTemplateNotFound is returned when an update or delete targets a
	// template id that does not exist in the database.
	ErrTemplateNotFound = errors.New("template was not found")

	// ErrTemplateNameTaken is returned when creating a template fails
	// because another template already uses the same name.
	ErrTemplateNameTaken = errors.New("template name already exists")

	// ErrNothingToUpdate is returned when an update request carries no
	// updatable fields at all.
	ErrNothingToUpdate = errors.New("no fields to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
