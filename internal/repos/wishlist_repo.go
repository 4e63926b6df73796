package repos

import (
	"slices"

	"shopfront/internal/store"
)

// WishlistRepo maps a user id to their saved product ids. A user who has
// never saved anything has an implicitly empty list.
type WishlistRepo struct {
	c *store.Collection[map[string][]string]
}

func NewWishlistRepo(s store.Store) *WishlistRepo {
	seed := func() map[string][]string { return map[string][]string{} }
	return &WishlistRepo{c: store.NewCollection(s, WishlistsCollection, seed)}
}

func (r *WishlistRepo) IDs(userID string) ([]string, error) {
	all, err := r.c.All()
	if err != nil {
		return nil, err
	}
	return all[userID], nil
}

// Add appends productID to the user's list; no-op if already present.
func (r *WishlistRepo) Add(userID, productID string) error {
	_, err := r.c.Update(func(all map[string][]string) (map[string][]string, error) {
		if slices.Contains(all[userID], productID) {
			return all, nil
		}
		all[userID] = append(all[userID], productID)
		return all, nil
	})
	return err
}

// Remove drops productID from the user's list; no-op if absent.
func (r *WishlistRepo) Remove(userID, productID string) error {
	_, err := r.c.Update(func(all map[string][]string) (map[string][]string, error) {
		ids := all[userID]
		i := slices.Index(ids, productID)
		if i < 0 {
			return all, nil
		}
		all[userID] = append(ids[:i:i], ids[i+1:]...)
		return all, nil
	})
	return err
}
