package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dcode-github/estate-envision/models"
	"github.com/dcode-github/estate-envision/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var errStorageDown = errors.New("connection reset by peer")

type fakeUsers struct {
	mu    sync.Mutex
	users []models.UserDocument
	err   error
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.UserDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*models.UserDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID.Hex() == id {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) Insert(_ context.Context, user *models.UserDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return storage.ErrDuplicate
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUsers) add(email, name string) models.UserDocument {
	u := models.UserDocument{ID: primitive.NewObjectID(), Email: email, Name: name}
	f.users = append(f.users, u)
	return u
}

type fakeProperties struct {
	docs []models.PropertyDocument
	err  error

	lastFilter bson.M
	lastOpts   *options.FindOptions
}

func (f *fakeProperties) Find(_ context.Context, filter bson.M, opts *options.FindOptions) ([]models.PropertyDocument, error) {
	f.lastFilter, f.lastOpts = filter, opts
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.PropertyDocument{}, f.docs...), nil
}

func (f *fakeProperties) FindByID(_ context.Context, id primitive.ObjectID) (*models.PropertyDocument, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, d := range f.docs {
		if d.ID == id {
			d := d
			return &d, nil
		}
	}
	return nil, nil
}

// FindByIDs returns matches in storage order, not request order.
func (f *fakeProperties) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.PropertyDocument, error) {
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []models.PropertyDocument
	for _, d := range f.docs {
		if want[d.ID] {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeProperties) add(title string) primitive.ObjectID {
	id := primitive.NewObjectID()
	f.docs = append(f.docs, models.PropertyDocument{ID: id, Title: title})
	return id
}

type fakeFavorites struct {
	mu        sync.Mutex
	favorites []models.Favorite
	err       error
	// raceInsert makes Insert report a duplicate as if a concurrent writer won.
	raceInsert bool
}

func (f *fakeFavorites) Exists(_ context.Context, userID, propertyID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	return f.index(userID, propertyID) >= 0, nil
}

func (f *fakeFavorites) Insert(_ context.Context, fav *models.Favorite) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.raceInsert || f.index(fav.UserID, fav.PropertyID) >= 0 {
		return storage.ErrDuplicate
	}
	fav.ID = primitive.NewObjectID()
	f.favorites = append(f.favorites, *fav)
	return nil
}

func (f *fakeFavorites) Delete(_ context.Context, userID, propertyID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	i := f.index(userID, propertyID)
	if i < 0 {
		return false, nil
	}
	f.favorites = append(f.favorites[:i], f.favorites[i+1:]...)
	return true, nil
}

func (f *fakeFavorites) PropertyIDs(_ context.Context, userID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	ids := []string{}
	for i := len(f.favorites) - 1; i >= 0; i-- {
		if f.favorites[i].UserID == userID {
			ids = append(ids, f.favorites[i].PropertyID)
		}
	}
	return ids, nil
}

func (f *fakeFavorites) index(userID, propertyID string) int {
	for i, fav := range f.favorites {
		if fav.UserID == userID && fav.PropertyID == propertyID {
			return i
		}
	}
	return -1
}

func (f *fakeFavorites) count(userID string) int {
	n := 0
	for _, fav := range f.favorites {
		if fav.UserID == userID {
			n++
		}
	}
	return n
}

type fakeRecommendations struct {
	recs []models.Recommendation
	err  error
}

func (f *fakeRecommendations) Insert(_ context.Context, rec *models.Recommendation) error {
	if f.err != nil {
		return f.err
	}
	rec.ID = primitive.NewObjectID()
	f.recs = append(f.recs, *rec)
	return nil
}

func (f *fakeRecommendations) FindByRecipient(_ context.Context, email string) ([]models.Recommendation, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Recommendation{}
	for i := len(f.recs) - 1; i >= 0; i-- {
		if f.recs[i].RecipientEmail == email {
			out = append(out, f.recs[i])
		}
	}
	return out, nil
}

type fakeSubmitted struct {
	records []models.SubmittedRecord
	err     error
	// hideExisting makes the pre-check miss, as when a concurrent insert lands between check and write.
	hideExisting bool
}

func (f *fakeSubmitted) ExistsByExternalID(_ context.Context, externalID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.hideExisting {
		return false, nil
	}
	return f.find(externalID) >= 0, nil
}

func (f *fakeSubmitted) Insert(_ context.Context, rec *models.SubmittedRecord) error {
	if f.err != nil {
		return f.err
	}
	if f.find(rec.ExternalID) >= 0 {
		return storage.ErrDuplicate
	}
	rec.ID = primitive.NewObjectID()
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeSubmitted) FindByOwner(_ context.Context, ownerID string) ([]models.SubmittedDocument, error) {
	if f.err != nil {
		return nil, f.err
	}
	docs := []models.SubmittedDocument{}
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].OwnerID == ownerID {
			docs = append(docs, f.records[i].Document())
		}
	}
	return docs, nil
}

func (f *fakeSubmitted) FindAll(_ context.Context) ([]models.SubmittedDocument, error) {
	if f.err != nil {
		return nil, f.err
	}
	docs := []models.SubmittedDocument{}
	for i := len(f.records) - 1; i >= 0; i-- {
		docs = append(docs, f.records[i].Document())
	}
	return docs, nil
}

func (f *fakeSubmitted) find(externalID string) int {
	for i, r := range f.records {
		if r.ExternalID == externalID {
			return i
		}
	}
	return -1
}

type fakeAttempts struct {
	counts map[string]int64
	err    error
}

func newFakeAttempts() *fakeAttempts {
	return &fakeAttempts{counts: map[string]int64{}}
}

func (f *fakeAttempts) Failures(_ context.Context, email string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[strings.ToLower(email)], nil
}

func (f *fakeAttempts) RecordFailure(_ context.Context, email string, _ time.Duration) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.counts[strings.ToLower(email)]++
	return f.counts[strings.ToLower(email)], nil
}

func (f *fakeAttempts) Reset(_ context.Context, email string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.counts, strings.ToLower(email))
	return nil
}

func recommendationRequest(propertyID, recipient string) models.RecommendationRequest {
	return models.RecommendationRequest{PropertyID: propertyID, RecipientEmail: recipient}
}

func favoriteOf(userID, propertyID string) models.Favorite {
	return models.Favorite{ID: primitive.NewObjectID(), UserID: userID, PropertyID: propertyID, CreatedAt: time.Now()}
}
