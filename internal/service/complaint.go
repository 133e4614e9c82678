package service

import (
	"context"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type complaintService struct {
	complaintRepo repository.ComplaintRepository
	userRepo      repository.UserRepository
	emailSvc      EmailService
	clock         Clock
}

func NewComplaintService(complaintRepo repository.ComplaintRepository, userRepo repository.UserRepository, emailSvc EmailService, clock Clock) ComplaintService {
	return &complaintService{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		emailSvc:      emailSvc,
		clock:         clock,
	}
}

func (s *complaintService) CreateComplaint(ctx context.Context, ownerID int32, subject, message string, priority domain.ComplaintPriority) (*domain.Complaint, error) {
	if subject == "" || message == "" {
		return nil, domain.ErrInvalidRange
	}
	if priority == "" {
		priority = domain.ComplaintPriorityMedium
	}

	now := s.clock.Now()
	complaint := &domain.Complaint{
		OwnerID:   ownerID,
		Subject:   subject,
		Message:   message,
		Status:    domain.ComplaintStatusPending,
		Priority:  priority,
		CreatedOn: now,
		UpdatedOn: now,
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}

	// Acknowledgement email is best-effort; the complaint is already filed.
	if user, err := s.userRepo.GetByID(ctx, ownerID); err == nil {
		if err := s.emailSvc.SendComplaintReceived(ctx, user.Email, user.FirstName, subject); err != nil {
			logger.Warn("Failed to send complaint acknowledgement", "complaint_id", complaint.ID, "error", err)
		}
	}

	return complaint, nil
}

func (s *complaintService) ListComplaints(ctx context.Context, ownerID int32) ([]domain.Complaint, error) {
	return s.complaintRepo.ListByOwner(ctx, ownerID)
}

// authorizeMutation mirrors the rental service's gate: existence is the
// caller's concern, then ownership, then state. Complaints have no time
// window; PENDING is the only editable state.
func (s *complaintService) authorizeMutation(c *domain.Complaint, requesterID int32) error {
	if c.OwnerID != requesterID {
		return domain.ErrForbidden
	}
	if c.Status != domain.ComplaintStatusPending {
		return domain.ErrInvalidState
	}
	return nil
}

func (s *complaintService) UpdateComplaint(ctx context.Context, requesterID, complaintID int32, upd ComplaintUpdate) (*domain.Complaint, error) {
	complaint, err := s.complaintRepo.GetByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeMutation(complaint, requesterID); err != nil {
		return nil, err
	}

	if upd.Subject != "" {
		complaint.Subject = upd.Subject
	}
	if upd.Message != "" {
		complaint.Message = upd.Message
	}
	if upd.Priority != "" {
		complaint.Priority = upd.Priority
	}
	complaint.UpdatedOn = s.clock.Now()

	if err := s.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

func (s *complaintService) DeleteComplaint(ctx context.Context, requesterID, complaintID int32) error {
	complaint, err := s.complaintRepo.GetByID(ctx, complaintID)
	if err != nil {
		return err
	}
	if err := s.authorizeMutation(complaint, requesterID); err != nil {
		return err
	}
	if err := s.complaintRepo.Delete(ctx, complaintID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Raced with another delete; surface the state error instead so
			// the caller knows the complaint is gone from under them.
			return domain.ErrInvalidState
		}
		return err
	}
	return nil
}
