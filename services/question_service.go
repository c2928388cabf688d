package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"anket.link/configs/configslog"
	"anket.link/models"
	"anket.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type QuestionServiceError string

func (e QuestionServiceError) Error() string { return string(e) }

const (
	ErrQuestionNotFound       QuestionServiceError = "soru bulunamadı"
	ErrQuestionForbidden      QuestionServiceError = "bu soru üzerinde işlem yetkiniz yok"
	ErrQuestionInvalidInput   QuestionServiceError = "geçersiz soru verisi"
	ErrQuestionUpdateFailed   QuestionServiceError = "soru güncellenemedi"
	ErrQuestionDeletionFailed QuestionServiceError = "soru silinemedi"
)

// IQuestionService soru işlemleri için arayüz.
type IQuestionService interface {
	PatchQuestion(ctx context.Context, questionID, requesterID string, patch QuestionPatch) (*QuestionView, error)
	// DeleteQuestion son soru silindiyse formClosed true döner.
	DeleteQuestion(ctx context.Context, questionID, requesterID string) (formClosed bool, err error)
}

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) IQuestionService {
	return &QuestionService{db: db}
}

func validateQuestionPatch(patch QuestionPatch) error {
	if patch.IsEmpty() {
		return fmt.Errorf("%w: güncellenecek en az bir alan gönderilmelidir", ErrQuestionInvalidInput)
	}
	if text, ok := patch.QuestionText.Get(); ok && strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: soru metni boş olamaz", ErrQuestionInvalidInput)
	}
	if options, ok := patch.Options.Get(); ok {
		for i, o := range options {
			if strings.TrimSpace(o.OptionText) == "" {
				return fmt.Errorf("%w: %d. seçeneğin metni boş", ErrQuestionInvalidInput, i+1)
			}
		}
	}
	return nil
}

// authorize sahiplik sonucunu soru hatalarına çevirir.
func authorizeQuestion(ctx context.Context, repo repositories.IQuestionRepository, questionID, requesterID string) (*repositories.QuestionOwnership, error) {
	own, err := repo.FindOwnership(ctx, questionID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	ownerID := ""
	if own != nil {
		ownerID = own.OwnerID
	}
	switch ResolveOwnership(own != nil, ownerID, requesterID) {
	case OwnershipNotFound:
		return nil, ErrQuestionNotFound
	case OwnershipNotOwner:
		return nil, ErrQuestionForbidden
	}
	return own, nil
}

// lockParentForm sorunun formunu transaction sonuna kadar kilitler. Aynı formdaki
// eşzamanlı soru işlemleri sayım ve seçenek okumasını sırayla yapar.
func lockParentForm(ctx context.Context, tx *gorm.DB, formID string) error {
	if _, err := repositories.NewFormRepositoryTx(tx).FindByIDForUpdate(ctx, formID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}
	return nil
}

// applyOptionDiff checkbox seçeneklerini gelen listeyle eşitler.
func applyOptionDiff(ctx context.Context, repo repositories.IOptionRepository, questionID string, incoming []OptionInput) error {
	storedIDs, err := repo.FindIDsByQuestion(ctx, questionID)
	if err != nil {
		return err
	}
	diff := DiffOptions(storedIDs, incoming)

	if err := repo.DeleteByIDs(ctx, questionID, diff.DeleteIDs); err != nil {
		return err
	}
	for _, u := range diff.Updates {
		if err := repo.Update(ctx, questionID, *u.ID, strings.TrimSpace(u.OptionText), u.OrderIndex); err != nil {
			return err
		}
	}
	if len(diff.Inserts) == 0 {
		return nil
	}
	inserts := make([]models.Option, 0, len(diff.Inserts))
	for _, in := range diff.Inserts {
		inserts = append(inserts, models.Option{QuestionID: questionID, OptionText: strings.TrimSpace(in.OptionText), OrderIndex: in.OrderIndex})
	}
	return repo.CreateBatch(ctx, inserts)
}

// PatchQuestion soruyu kısmen günceller; checkbox sorularında seçenekleri eşitler.
func (s *QuestionService) PatchQuestion(ctx context.Context, questionID, requesterID string, patch QuestionPatch) (*QuestionView, error) {
	if err := validateQuestionPatch(patch); err != nil {
		return nil, err
	}

	var view QuestionView
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		questionRepoTx := repositories.NewQuestionRepositoryTx(tx)

		own, err := authorizeQuestion(ctx, questionRepoTx, questionID, requesterID)
		if err != nil {
			if KindOf(err) == KindInternal {
				return ErrQuestionUpdateFailed
			}
			return err
		}
		if err := lockParentForm(ctx, tx, own.FormID); err != nil {
			if KindOf(err) == KindInternal {
				return ErrQuestionUpdateFailed
			}
			return err
		}

		updates := make(map[string]interface{})
		if text, ok := patch.QuestionText.Get(); ok {
			updates["question_text"] = strings.TrimSpace(text)
		}
		if required, ok := patch.IsRequired.Get(); ok {
			updates["is_required"] = required
		}
		if order, ok := patch.OrderIndex.Get(); ok {
			updates["order_index"] = order
		}
		if err := questionRepoTx.Update(ctx, questionID, updates); err != nil {
			configslog.Log.Error("PatchQuestion: soru güncellenemedi", zap.String("question_id", questionID), zap.Error(err))
			return ErrQuestionUpdateFailed
		}

		if options, ok := patch.Options.Get(); ok && own.QuestionType == models.QuestionTypeCheckbox {
			if err := applyOptionDiff(ctx, repositories.NewOptionRepositoryTx(tx), questionID, options); err != nil {
				configslog.Log.Error("PatchQuestion: seçenekler eşitlenemedi", zap.String("question_id", questionID), zap.Error(err))
				return ErrQuestionUpdateFailed
			}
		}

		question, err := questionRepoTx.FindByIDWithOptions(ctx, questionID)
		if err != nil {
			return ErrQuestionUpdateFailed
		}
		view = newQuestionView(*question)
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("Soru güncellendi: ID %s", questionID)
	return &view, nil
}

// DeleteQuestion soruyu siler; formda soru kalmadıysa form kapatılır.
func (s *QuestionService) DeleteQuestion(ctx context.Context, questionID, requesterID string) (bool, error) {
	formClosed := false
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		questionRepoTx := repositories.NewQuestionRepositoryTx(tx)

		own, err := authorizeQuestion(ctx, questionRepoTx, questionID, requesterID)
		if err != nil {
			if KindOf(err) == KindInternal {
				return ErrQuestionDeletionFailed
			}
			return err
		}
		if err := lockParentForm(ctx, tx, own.FormID); err != nil {
			if KindOf(err) == KindInternal {
				return ErrQuestionDeletionFailed
			}
			return err
		}

		if err := questionRepoTx.Delete(ctx, questionID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrQuestionNotFound
			}
			return ErrQuestionDeletionFailed
		}

		remaining, err := questionRepoTx.CountByForm(ctx, own.FormID)
		if err != nil {
			return ErrQuestionDeletionFailed
		}
		if remaining > 0 {
			return nil
		}
		if err := repositories.NewFormRepositoryTx(tx).SetClosed(ctx, own.FormID, true); err != nil {
			configslog.Log.Error("DeleteQuestion: form kapatılamadı", zap.String("form_id", own.FormID), zap.Error(err))
			return ErrQuestionDeletionFailed
		}
		formClosed = true
		return nil
	})
	if txErr != nil {
		return false, txErr
	}

	configslog.SLog.Infof("Soru silindi: ID %s, form kapatıldı: %t", questionID, formClosed)
	return formClosed, nil
}

var _ IQuestionService = (*QuestionService)(nil)
