package sqlstore

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// authorRepository 作者仓储实现(GORM)
type authorRepository struct {
	db  *gorm.DB
	txm *TxManager
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB, txm *TxManager) author.Repository {
	return &authorRepository{db: db, txm: txm}
}

// FindByID 根据ID查找作者(预加载图书)
func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	err := getDB(ctx, r.db).Preload("Books", orderByID).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}
	return toAuthorEntity(&model), nil
}

// FindAll 分页查询作者列表
func (r *authorRepository) FindAll(ctx context.Context, req book.PageRequest) ([]*author.Author, int64, error) {
	col, err := req.SortColumn(author.SortableFields)
	if err != nil {
		return nil, 0, err
	}

	db := getDB(ctx, r.db)

	var total int64
	if err := db.Model(&AuthorModel{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询作者总数失败")
	}

	query := db.Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: req.Desc()})
	if col != "id" {
		query = query.Order("id")
	}

	var models []AuthorModel
	if err := query.Limit(req.Size).Offset(req.Offset()).Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询作者列表失败")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, total, nil
}

// ExistsByID 判断作者是否存在
func (r *authorRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := getDB(ctx, r.db).Model(&AuthorModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "查询作者失败")
	}
	return count > 0, nil
}

// Save 插入或更新作者姓名
func (r *authorRepository) Save(ctx context.Context, a *author.Author) error {
	db := getDB(ctx, r.db)

	if a.ID == 0 {
		model := &AuthorModel{Name: a.Name, Surname: a.Surname, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt}
		if err := db.Create(model).Error; err != nil {
			return apperrors.Wrap(err, "创建作者失败")
		}
		a.ID = model.ID
		a.CreatedAt = model.CreatedAt
		a.UpdatedAt = model.UpdatedAt
		return nil
	}

	var model AuthorModel
	if err := db.First(&model, a.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return author.ErrAuthorNotFound
		}
		return apperrors.Wrap(err, "查询作者失败")
	}
	err := db.Model(&model).Updates(map[string]interface{}{
		"name":    a.Name,
		"surname": a.Surname,
	}).Error
	if err != nil {
		return apperrors.Wrap(err, "更新作者失败")
	}
	a.UpdatedAt = model.UpdatedAt
	return nil
}

// DeleteByID 删除作者(软删除)并解除与所有图书的关联
func (r *authorRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.txm.Transaction(ctx, func(ctx context.Context) error {
		// Select("Books")只删除book_author中的关联行,图书本身保留
		result := getDB(ctx, r.db).Select("Books").Delete(&AuthorModel{ID: id})
		if result.Error != nil {
			return apperrors.Wrapf(result.Error, "删除作者失败: id=%d", id)
		}
		if result.RowsAffected == 0 {
			return author.ErrAuthorNotFound
		}
		return nil
	})
}

// toAuthorEntity GORM模型 → 领域实体
func toAuthorEntity(model *AuthorModel) *author.Author {
	a := &author.Author{
		ID:        model.ID,
		Name:      model.Name,
		Surname:   model.Surname,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
	for _, b := range model.Books {
		a.Books = append(a.Books, author.BookRef{ID: b.ID, Title: b.Title})
	}
	return a
}
