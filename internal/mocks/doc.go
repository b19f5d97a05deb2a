// Package mocks provides centralized mock implementations for testing.
//
// Each mock implements one service interface with a function field per
// method. Unset functions fall back to the default return values on the
// struct, so a test only configures the calls it cares about:
//
//	import "github.com/newsboard/newsboard-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    articles := &mocks.MockArticleService{
//	        GetArticleFn: func(ctx context.Context, id int) (*domain.Article, error) {
//	            return nil, store.ErrArticleIDNotFound
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
package mocks
