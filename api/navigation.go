package api

import (
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hanksha/strajk-bowling/confirmation"
	"github.com/patrickmn/go-cache"
)

// FlashStore holds navigation state between a redirect and the request that
// follows it. A token belongs to the session that created it and can be
// taken once.
type FlashStore struct {
	mu    sync.Mutex
	cache *cache.Cache
}

type flashEntry struct {
	sessionID string
	state     confirmation.NavigationState
}

func NewFlashStore(ttl time.Duration) *FlashStore {
	return &FlashStore{cache: cache.New(ttl, 2*ttl)}
}

func (f *FlashStore) Put(sessionID string, state confirmation.NavigationState) string {
	token := uuid.NewString()
	f.cache.Set(token, flashEntry{sessionID: sessionID, state: state}, cache.DefaultExpiration)
	return token
}

// Take returns the state stored under token. Tokens of other sessions are
// reported as not found and stay in place.
func (f *FlashStore) Take(token, sessionID string) (confirmation.NavigationState, bool) {
	if len(token) == 0 || len(sessionID) == 0 {
		return confirmation.NavigationState{}, false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	cached, found := f.cache.Get(token)
	if !found {
		return confirmation.NavigationState{}, false
	}

	entry := cached.(flashEntry)
	if entry.sessionID != sessionID {
		return confirmation.NavigationState{}, false
	}
	f.cache.Delete(token)

	return entry.state, true
}

// redirectNavigator answers the request with a 303 to the target path. The
// state travels through the FlashStore.
type redirectNavigator struct {
	c         *gin.Context
	flash     *FlashStore
	sessionID string
}

func (n *redirectNavigator) NavigateTo(path string, state confirmation.NavigationState) error {
	token := n.flash.Put(n.sessionID, state)

	query := url.Values{}
	query.Set("state", token)

	n.c.Redirect(http.StatusSeeOther, path+"?"+query.Encode())
	return nil
}

// jsonNavigator records the navigation so it can be returned in the body.
type jsonNavigator struct {
	flash     *FlashStore
	sessionID string
	path      string
	state     confirmation.NavigationState
	token     string
}

func (n *jsonNavigator) NavigateTo(path string, state confirmation.NavigationState) error {
	n.path = path
	n.state = state
	n.token = n.flash.Put(n.sessionID, state)
	return nil
}

type navigationResponse struct {
	NavigateTo string                       `json:"navigateTo"`
	State      confirmation.NavigationState `json:"state"`
	Token      string                       `json:"token"`
}
