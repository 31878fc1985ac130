package sqlstore

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// bookRepository 图书仓储实现(GORM)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 写操作(图书+关联表)在同一事务中完成
type bookRepository struct {
	db  *gorm.DB
	txm *TxManager
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB, txm *TxManager) book.Repository {
	return &bookRepository{db: db, txm: txm}
}

// FindByID 根据ID查找图书(预加载作者)
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Preload("Authors", orderByID).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindByTitle 根据书名精确查找
// MySQL默认排序规则不区分大小写,需要BINARY比较
func (r *bookRepository) FindByTitle(ctx context.Context, title string) (*book.Book, error) {
	db := getDB(ctx, r.db)

	cond := "title = ?"
	if db.Dialector.Name() == "mysql" {
		cond = "BINARY title = ?"
	}

	var model BookModel
	err := db.Preload("Authors", orderByID).Where(cond, title).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindAll 分页查询图书列表
func (r *bookRepository) FindAll(ctx context.Context, req book.PageRequest) (*book.Page, error) {
	// 1. 排序字段白名单,防止SQL注入
	col, err := req.SortColumn(book.SortableFields)
	if err != nil {
		return nil, err
	}

	db := getDB(ctx, r.db)

	// 2. 查询总数
	var total int64
	if err := db.Model(&BookModel{}).Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书总数失败")
	}

	// 3. 排序 + 分页(非ID排序时以ID作为第二排序键,保证翻页稳定)
	query := db.Preload("Authors", orderByID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: req.Desc()})
	if col != "id" {
		query = query.Order("id")
	}

	var models []BookModel
	if err := query.Limit(req.Size).Offset(req.Offset()).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	// 4. 转换为领域实体
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return &book.Page{Items: books, Total: total, PageRequest: req}, nil
}

// ExistsByID 判断图书是否存在(软删除的记录视为不存在)
func (r *bookRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := getDB(ctx, r.db).Model(&BookModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "查询图书失败")
	}
	return count > 0, nil
}

// Save 插入或整体更新图书
func (r *bookRepository) Save(ctx context.Context, b *book.Book) error {
	return r.txm.Transaction(ctx, func(ctx context.Context) error {
		db := getDB(ctx, r.db)

		// 1. 解析作者:校验已有作者存在,创建新作者
		authors, err := resolveAuthors(db, b.Authors)
		if err != nil {
			return err
		}

		// 2. 插入或更新
		if b.ID == 0 {
			return r.create(db, b, authors)
		}
		return r.update(db, b, authors)
	})
}

func (r *bookRepository) create(db *gorm.DB, b *book.Book, authors []AuthorModel) error {
	model := &BookModel{
		Title:     b.Title,
		Authors:   authors,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	// 作者已在resolveAuthors中落库,这里只写关联表
	if err := db.Omit("Authors.*").Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrBookAlreadyExists
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 回填自增ID
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	b.Authors = toAuthorValues(authors)
	return nil
}

func (r *bookRepository) update(db *gorm.DB, b *book.Book, authors []AuthorModel) error {
	var model BookModel
	err := db.First(&model, b.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return book.ErrBookNotFound
		}
		return apperrors.Wrap(err, "查询图书失败")
	}

	if err := db.Model(&model).Update("title", b.Title).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrBookAlreadyExists
		}
		return apperrors.Wrap(err, "更新图书失败")
	}

	// 整体替换作者集合:不在新集合中的关联行被删除
	assoc := db.Model(&model).Association("Authors")
	if len(authors) == 0 {
		err = assoc.Clear()
	} else {
		err = assoc.Replace(authors)
	}
	if err != nil {
		return apperrors.Wrap(err, "替换图书作者失败")
	}

	b.UpdatedAt = model.UpdatedAt
	b.Authors = toAuthorValues(authors)
	return nil
}

// DeleteByID 删除图书(软删除)并清除作者关联
func (r *bookRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.txm.Transaction(ctx, func(ctx context.Context) error {
		// Select("Authors")只删除book_author中的关联行,作者本身保留
		result := getDB(ctx, r.db).Select("Authors").Delete(&BookModel{ID: id})
		if result.Error != nil {
			return apperrors.Wrapf(result.Error, "删除图书失败: id=%d", id)
		}
		if result.RowsAffected == 0 {
			return book.ErrBookNotFound
		}
		return nil
	})
}

// resolveAuthors 把请求中的作者解析为持久化模型
// ID非0的作者必须已存在(不存在返回ErrAuthorNotFound);ID为0的作者新建;重复ID去重
func resolveAuthors(db *gorm.DB, authors []book.Author) ([]AuthorModel, error) {
	var ids []uint
	seen := make(map[uint]bool)
	for _, a := range authors {
		if a.ID != 0 && !seen[a.ID] {
			seen[a.ID] = true
			ids = append(ids, a.ID)
		}
	}

	existing := make(map[uint]AuthorModel, len(ids))
	if len(ids) > 0 {
		var found []AuthorModel
		if err := db.Where("id IN ?", ids).Find(&found).Error; err != nil {
			return nil, apperrors.Wrap(err, "查询作者失败")
		}
		for _, m := range found {
			existing[m.ID] = m
		}
		if len(existing) != len(ids) {
			return nil, book.ErrAuthorNotFound
		}
	}

	models := make([]AuthorModel, 0, len(authors))
	added := make(map[uint]bool, len(ids))
	for _, a := range authors {
		if a.ID == 0 {
			m := AuthorModel{Name: a.Name, Surname: a.Surname}
			if err := db.Create(&m).Error; err != nil {
				return nil, apperrors.Wrap(err, "创建作者失败")
			}
			models = append(models, m)
			continue
		}
		if added[a.ID] {
			continue
		}
		added[a.ID] = true
		models = append(models, existing[a.ID])
	}

	return models, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:        model.ID,
		Title:     model.Title,
		Authors:   toAuthorValues(model.Authors),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func toAuthorValues(models []AuthorModel) []book.Author {
	authors := make([]book.Author, len(models))
	for i, m := range models {
		authors[i] = book.Author{ID: m.ID, Name: m.Name, Surname: m.Surname}
	}
	return authors
}
