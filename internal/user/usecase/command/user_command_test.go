package command

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/gamebay/retail-ops/internal/user/domain"
)

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[uint]domain.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]domain.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	return &u, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: email %s", domain.ErrNotFound, email)
}

func (r *fakeUserRepo) FindAll(limit, offset int) ([]domain.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Update(u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return fmt.Errorf("%w: id %d", domain.ErrNotFound, u.ID)
	}
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) UpdateCart(userID uint, cart domain.CartData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("%w: id %d", domain.ErrNotFound, userID)
	}
	u.CartData = cart
	r.users[userID] = u
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func registerTestUser(t *testing.T, repo *fakeUserRepo) *domain.User {
	t.Helper()
	handler := NewRegisterUserHandler(repo)
	user, err := handler.Handle(RegisterUserCommand{
		Name:     "Test Customer",
		Email:    "customer@example.com",
		Password: "secret-password",
	})
	if err != nil {
		t.Fatalf("registering user: %v", err)
	}
	return user
}

func TestRegisterUser(t *testing.T) {
	repo := newFakeUserRepo()
	user := registerTestUser(t, repo)

	if user.Role != domain.RoleUser {
		t.Fatalf("role = %q, want %q", user.Role, domain.RoleUser)
	}
	if user.Password == "secret-password" {
		t.Fatal("password stored in plaintext")
	}
	if user.CartData == nil {
		t.Fatal("cart should be initialized empty")
	}
}

func TestRegisterUserValidation(t *testing.T) {
	repo := newFakeUserRepo()
	registerTestUser(t, repo)
	handler := NewRegisterUserHandler(repo)

	cases := []RegisterUserCommand{
		{Name: "", Email: "a@b.c", Password: "longenough"},
		{Name: "A", Email: "", Password: "longenough"},
		{Name: "A", Email: "a@b.c", Password: "short"},
		{Name: "A", Email: "customer@example.com", Password: "longenough"},
		{Name: "A", Email: "b@b.c", Password: "longenough", Role: "superuser"},
	}
	for i, cmd := range cases {
		if _, err := handler.Handle(cmd); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("case %d: err = %v, want ErrValidation", i, err)
		}
	}
}

func TestLoginUser(t *testing.T) {
	repo := newFakeUserRepo()
	registerTestUser(t, repo)
	handler := NewLoginUserHandler(repo)

	resp, err := handler.Handle(LoginUserCommand{Email: "customer@example.com", Password: "secret-password"})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}
	if resp.User.Email != "customer@example.com" {
		t.Fatalf("user email = %q", resp.User.Email)
	}

	if _, err := handler.Handle(LoginUserCommand{Email: "customer@example.com", Password: "wrong"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("wrong password: err = %v, want ErrValidation", err)
	}
	if _, err := handler.Handle(LoginUserCommand{Email: "nobody@example.com", Password: "whatever"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("unknown email: err = %v, want ErrValidation", err)
	}
}

func TestCartAddAndUpdate(t *testing.T) {
	repo := newFakeUserRepo()
	user := registerTestUser(t, repo)
	handler := NewCartHandler(repo)

	// Adding the same line twice increments it.
	if _, err := handler.HandleAdd(AddToCartCommand{UserID: user.ID, ItemID: "42", Condition: "new"}); err != nil {
		t.Fatalf("HandleAdd failed: %v", err)
	}
	cart, err := handler.HandleAdd(AddToCartCommand{UserID: user.ID, ItemID: "42", Condition: "new"})
	if err != nil {
		t.Fatalf("HandleAdd failed: %v", err)
	}
	if cart["42"]["new"] != 2 {
		t.Fatalf("cart line = %d, want 2", cart["42"]["new"])
	}

	// Conditions are tracked as separate lines.
	cart, err = handler.HandleAdd(AddToCartCommand{UserID: user.ID, ItemID: "42", Condition: "used"})
	if err != nil {
		t.Fatalf("HandleAdd failed: %v", err)
	}
	if cart["42"]["used"] != 1 || cart["42"]["new"] != 2 {
		t.Fatalf("cart = %v", cart)
	}

	// Overwrite a quantity directly.
	cart, err = handler.HandleUpdate(UpdateCartCommand{UserID: user.ID, ItemID: "42", Condition: "new", Quantity: 5})
	if err != nil {
		t.Fatalf("HandleUpdate failed: %v", err)
	}
	if cart["42"]["new"] != 5 {
		t.Fatalf("cart line = %d, want 5", cart["42"]["new"])
	}

	// Quantity zero removes the line, and the item once empty.
	cart, err = handler.HandleUpdate(UpdateCartCommand{UserID: user.ID, ItemID: "42", Condition: "new", Quantity: 0})
	if err != nil {
		t.Fatalf("HandleUpdate failed: %v", err)
	}
	if _, ok := cart["42"]["new"]; ok {
		t.Fatal("zero quantity should remove the line")
	}
	cart, err = handler.HandleUpdate(UpdateCartCommand{UserID: user.ID, ItemID: "42", Condition: "used", Quantity: 0})
	if err != nil {
		t.Fatalf("HandleUpdate failed: %v", err)
	}
	if _, ok := cart["42"]; ok {
		t.Fatal("emptied item should be dropped from the cart")
	}
}

func TestCartClear(t *testing.T) {
	repo := newFakeUserRepo()
	user := registerTestUser(t, repo)
	handler := NewCartHandler(repo)

	if _, err := handler.HandleAdd(AddToCartCommand{UserID: user.ID, ItemID: "1", Condition: "new"}); err != nil {
		t.Fatalf("HandleAdd failed: %v", err)
	}
	if err := handler.HandleClear(user.ID); err != nil {
		t.Fatalf("HandleClear failed: %v", err)
	}

	stored, _ := repo.FindByID(user.ID)
	if len(stored.CartData) != 0 {
		t.Fatalf("cart = %v, want empty", stored.CartData)
	}
}

func TestCartValidation(t *testing.T) {
	repo := newFakeUserRepo()
	user := registerTestUser(t, repo)
	handler := NewCartHandler(repo)

	if _, err := handler.HandleAdd(AddToCartCommand{UserID: user.ID, ItemID: "", Condition: "new"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("empty item: err = %v, want ErrValidation", err)
	}
	if _, err := handler.HandleAdd(AddToCartCommand{UserID: user.ID, ItemID: "1", Condition: "mint"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("bad condition: err = %v, want ErrValidation", err)
	}
	if _, err := handler.HandleUpdate(UpdateCartCommand{UserID: user.ID, ItemID: "1", Condition: "new", Quantity: -1}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("negative quantity: err = %v, want ErrValidation", err)
	}
	if err := handler.HandleClear(0); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("zero user: err = %v, want ErrValidation", err)
	}
}
