package rest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
)

// queryParser accumulates field errors while reading query and path values.
type queryParser struct {
	r    *http.Request
	errs []domain.FieldError
}

func newQueryParser(r *http.Request) *queryParser {
	return &queryParser{r: r}
}

func (p *queryParser) fail(field, message string) {
	p.errs = append(p.errs, domain.FieldError{Field: field, Message: message})
}

func (p *queryParser) int(name string) int {
	v := p.r.URL.Query().Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(name, "must be an integer")
		return 0
	}
	return n
}

func (p *queryParser) optBool(name string) *bool {
	v := p.r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(name, "must be true or false")
		return nil
	}
	return &b
}

func (p *queryParser) optString(name string) *string {
	v := strings.TrimSpace(p.r.URL.Query().Get(name))
	if v == "" {
		return nil
	}
	return &v
}

func (p *queryParser) optStatus(name string) *domain.EditStatus {
	v := p.optString(name)
	if v == nil {
		return nil
	}
	s := domain.EditStatus(strings.ToUpper(*v))
	return &s
}

func (p *queryParser) optEntityType(name string) *domain.EntityType {
	v := p.optString(name)
	if v == nil {
		return nil
	}
	et := domain.EntityType(strings.ToUpper(*v))
	return &et
}

// pathEntityType reads an entity type path segment, accepting any case.
func (p *queryParser) pathEntityType(name string) domain.EntityType {
	et := domain.EntityType(strings.ToUpper(p.r.PathValue(name)))
	if !et.IsValid() {
		p.fail(name, "unknown entity type")
	}
	return et
}

func (p *queryParser) pathUUID(name string) uuid.UUID {
	id, err := uuid.Parse(p.r.PathValue(name))
	if err != nil {
		p.fail(name, "must be a UUID")
		return uuid.Nil
	}
	return id
}

// err returns the accumulated errors, or nil.
func (p *queryParser) err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(p.errs)
}
