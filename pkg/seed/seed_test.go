package seed

import (
	"context"
	"testing"

	"github.com/Haris-56/coupon/pkg/auth"
	"github.com/Haris-56/coupon/pkg/models"
	"github.com/Haris-56/coupon/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repositories. Idempotency is the interesting property here and
// that needs state carried across runs, which call-counting mocks make
// awkward.

type fakeUserRepo struct {
	users []*models.User
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}
func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return nil
}
func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakeCategoryRepo struct {
	categories []*models.Category
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}
func (f *fakeCategoryRepo) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}
func (f *fakeCategoryRepo) SlugExists(ctx context.Context, slug string, excludeID *primitive.ObjectID) (bool, error) {
	_, err := f.FindBySlug(ctx, slug)
	return err == nil, nil
}
func (f *fakeCategoryRepo) FindAll(ctx context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}
func (f *fakeCategoryRepo) FindActive(ctx context.Context) ([]models.Category, error) {
	return f.FindAll(ctx)
}
func (f *fakeCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	category.ID = primitive.NewObjectID()
	f.categories = append(f.categories, category)
	return nil
}
func (f *fakeCategoryRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	return nil
}
func (f *fakeCategoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return nil
}
func (f *fakeCategoryRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.categories)), nil
}

type fakeStoreRepo struct {
	stores []*models.Store
}

func (f *fakeStoreRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Store, error) {
	for _, s := range f.stores {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, repository.ErrStoreNotFound
}
func (f *fakeStoreRepo) FindBySlug(ctx context.Context, slug string) (*models.Store, error) {
	for _, s := range f.stores {
		if s.Slug == slug {
			return s, nil
		}
	}
	return nil, repository.ErrStoreNotFound
}
func (f *fakeStoreRepo) SlugExists(ctx context.Context, slug string, excludeID *primitive.ObjectID) (bool, error) {
	_, err := f.FindBySlug(ctx, slug)
	return err == nil, nil
}
func (f *fakeStoreRepo) FindAll(ctx context.Context) ([]models.Store, error) {
	out := make([]models.Store, 0, len(f.stores))
	for _, s := range f.stores {
		out = append(out, *s)
	}
	return out, nil
}
func (f *fakeStoreRepo) FindActive(ctx context.Context) ([]models.Store, error) {
	return f.FindAll(ctx)
}
func (f *fakeStoreRepo) Create(ctx context.Context, store *models.Store) error {
	store.ID = primitive.NewObjectID()
	f.stores = append(f.stores, store)
	return nil
}
func (f *fakeStoreRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	return nil
}
func (f *fakeStoreRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return nil
}
func (f *fakeStoreRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.stores)), nil
}

type fakeCouponRepo struct {
	coupons []*models.Coupon
}

func (f *fakeCouponRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Coupon, error) {
	for _, c := range f.coupons {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repository.ErrCouponNotFound
}
func (f *fakeCouponRepo) Search(ctx context.Context, filter bson.M, sort bson.D) ([]models.Coupon, error) {
	out := make([]models.Coupon, 0, len(f.coupons))
	for _, c := range f.coupons {
		out = append(out, *c)
	}
	return out, nil
}
func (f *fakeCouponRepo) FindByCodeAndStore(ctx context.Context, code string, storeID primitive.ObjectID) (*models.Coupon, error) {
	for _, c := range f.coupons {
		if c.Code == code && c.Store == storeID {
			return c, nil
		}
	}
	return nil, repository.ErrCouponNotFound
}
func (f *fakeCouponRepo) Create(ctx context.Context, coupon *models.Coupon) error {
	coupon.ID = primitive.NewObjectID()
	f.coupons = append(f.coupons, coupon)
	return nil
}
func (f *fakeCouponRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	return nil
}
func (f *fakeCouponRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return nil
}
func (f *fakeCouponRepo) IncrementVote(ctx context.Context, id primitive.ObjectID, direction models.VoteDirection) error {
	return nil
}
func (f *fakeCouponRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.coupons)), nil
}

func TestSeederRun(t *testing.T) {
	ctx := context.Background()
	users := &fakeUserRepo{}
	categories := &fakeCategoryRepo{}
	stores := &fakeStoreRepo{}
	coupons := &fakeCouponRepo{}
	seeder := NewSeeder(users, categories, stores, coupons)

	summary, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, summary.CreatedCoupons)

	assert.Len(t, users.users, 1)
	assert.Len(t, categories.categories, 3)
	assert.Len(t, stores.stores, 3)
	assert.Len(t, coupons.coupons, 6)

	t.Run("AdminUser", func(t *testing.T) {
		admin, err := users.FindByEmail(ctx, AdminEmail)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, admin.Role)
		assert.True(t, admin.Verified)
		assert.True(t, auth.CheckPassword(admin.PasswordHash, "admin123"))
	})

	t.Run("CouponsReferenceSeededEntities", func(t *testing.T) {
		for _, c := range coupons.coupons {
			_, err := stores.FindByID(ctx, c.Store)
			assert.NoError(t, err, "coupon %q has a dangling store", c.Title)
			_, err = categories.FindByID(ctx, c.Category)
			assert.NoError(t, err, "coupon %q has a dangling category", c.Title)
		}
	})

	t.Run("CodelessCouponIsADeal", func(t *testing.T) {
		amazon, err := stores.FindBySlug(ctx, "amazon")
		require.NoError(t, err)

		deal, err := coupons.FindByCodeAndStore(ctx, "", amazon.ID)
		require.NoError(t, err)
		assert.Equal(t, models.CouponTypeDeal, deal.CouponType)
	})

	t.Run("SecondRunCreatesNothing", func(t *testing.T) {
		summary, err := seeder.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, summary.CreatedCoupons)
		assert.Len(t, users.users, 1)
		assert.Len(t, categories.categories, 3)
		assert.Len(t, stores.stores, 3)
		assert.Len(t, coupons.coupons, 6)
	})
}

func TestEnsureEmailTemplates(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEmailTemplateRepo{}

	require.NoError(t, EnsureEmailTemplates(ctx, repo))
	assert.Len(t, repo.templates, 3)

	slugs := make([]string, 0, len(repo.templates))
	for _, tpl := range repo.templates {
		slugs = append(slugs, tpl.Slug)
	}
	assert.ElementsMatch(t, []string{"welcome-email", "reset-password", "reset-confirmation"}, slugs)

	// A second call must not duplicate the defaults.
	require.NoError(t, EnsureEmailTemplates(ctx, repo))
	assert.Len(t, repo.templates, 3)
}

type fakeEmailTemplateRepo struct {
	templates []models.EmailTemplate
}

func (f *fakeEmailTemplateRepo) FindAll(ctx context.Context) ([]models.EmailTemplate, error) {
	return f.templates, nil
}
func (f *fakeEmailTemplateRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.EmailTemplate, error) {
	for i := range f.templates {
		if f.templates[i].ID == id {
			return &f.templates[i], nil
		}
	}
	return nil, repository.ErrTemplateNotFound
}
func (f *fakeEmailTemplateRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	return nil
}
func (f *fakeEmailTemplateRepo) CreateMany(ctx context.Context, templates []models.EmailTemplate) error {
	f.templates = append(f.templates, templates...)
	return nil
}
func (f *fakeEmailTemplateRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.templates)), nil
}
