package history

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/printing"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/render"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/session"
)

// GetQueueAPI returns the current print queue and its page estimate.
// The estimate counts queued ids, including ids of deleted receipts.
func GetQueueAPI(c *fiber.Ctx, sess *session.Session) error {
	ids := sess.QueueIDs()
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"ids":   ids,
			"count": len(ids),
			"pages": sess.PageEstimate(),
		},
	})
}

type enqueueInput struct {
	IDs []string `json:"ids"`
}

// EnqueueManyAPI appends a batch of receipt ids to the queue. Ids already
// queued keep their original position; duplicates in the batch are ignored.
func EnqueueManyAPI(c *fiber.Ctx, sess *session.Session) error {
	var in enqueueInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	sess.EnqueueMany(in.IDs)
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"count": sess.QueueLen(),
			"pages": sess.PageEstimate(),
		},
		"message": "Receipts queued for printing",
	})
}

// ToggleQueueAPI adds or removes one receipt from the print queue
func ToggleQueueAPI(c *fiber.Ctx, sess *session.Session) error {
	id := c.Params("id")
	if _, ok := sess.Receipt(id); !ok {
		return fiber.NewError(fiber.StatusNotFound, "Receipt not found")
	}

	queued := sess.ToggleQueue(id)
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":     id,
			"queued": queued,
			"count":  sess.QueueLen(),
			"pages":  sess.PageEstimate(),
		},
	})
}

// SelectAllAPI queues every receipt in history, in history order
func SelectAllAPI(c *fiber.Ctx, sess *session.Session) error {
	sess.SelectAllHistory()
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"count": sess.QueueLen(),
			"pages": sess.PageEstimate(),
		},
		"message": "All receipts queued for printing",
	})
}

// ClearQueueAPI empties the print queue
func ClearQueueAPI(c *fiber.Ctx, sess *session.Session) error {
	sess.ClearQueue()
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Print queue cleared",
	})
}

// DownloadBatchPDFAPI streams the queued receipts as A4 sheets of four
func DownloadBatchPDFAPI(c *fiber.Ctx, sess *session.Session, renderer render.Renderer) error {
	queued := sess.ResolveQueue()
	if len(queued) == 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Print queue is empty")
	}

	data, err := renderer.BatchPDF(printing.Pack(queued), sess.Profile(), sess.Categories())
	if err != nil {
		if errors.Is(err, render.ErrUnavailable) {
			return fiber.NewError(fiber.StatusServiceUnavailable, "PDF generation is not available")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate batch PDF")
	}

	name := render.BatchFileName(time.Now())
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Send(data)
}
