package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// CommandHandler is called when a user command is received.
type CommandHandler func(command string) string

// PhotoHandler is called with the downloaded bytes of a chart image.
type PhotoHandler func(ctx context.Context, image []byte) string

type photoSize struct {
	FileID   string `json:"file_id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	FileSize int    `json:"file_size"`
}

type document struct {
	FileID   string `json:"file_id"`
	MimeType string `json:"mime_type"`
}

// telegramUpdate represents a Telegram update from long polling.
type telegramUpdate struct {
	UpdateID int `json:"update_id"`
	Message  *struct {
		Text     string      `json:"text"`
		Caption  string      `json:"caption"`
		Photo    []photoSize `json:"photo"`
		Document *document   `json:"document"`
	} `json:"message"`
}

// imageFileID picks the largest photo size, or an image sent as a file.
func (u telegramUpdate) imageFileID() string {
	m := u.Message
	if m == nil {
		return ""
	}
	best, bestArea := "", -1
	for _, p := range m.Photo {
		if area := p.Width * p.Height; area > bestArea {
			best, bestArea = p.FileID, area
		}
	}
	if best != "" {
		return best
	}
	if m.Document != nil && strings.HasPrefix(m.Document.MimeType, "image/") {
		return m.Document.FileID
	}
	return ""
}

// StartPolling begins long-polling for Telegram updates. Blocks until ctx is cancelled.
// onPhoto may be nil, in which case images are ignored.
func (t *TelegramNotifier) StartPolling(ctx context.Context, onCommand CommandHandler, onPhoto PhotoHandler) {
	offset := 0
	client := &http.Client{Timeout: 35 * time.Second, Transport: t.Client.Transport}

	for {
		select {
		case <-ctx.Done():
			log.Println("[INFO] Telegram polling stopped")
			return
		default:
		}

		updates, err := t.fetchUpdates(ctx, client, offset, 30)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[WARN] polling request failed: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		for _, update := range updates {
			offset = update.UpdateID + 1
			t.dispatch(ctx, update, onCommand, onPhoto)
		}
	}
}

func (t *TelegramNotifier) fetchUpdates(ctx context.Context, client *http.Client, offset, timeoutSec int) ([]telegramUpdate, error) {
	apiURL := fmt.Sprintf("%s?offset=%d&timeout=%d", t.methodURL("getUpdates"), offset, timeoutSec)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create polling request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read polling response: %w", err)
	}

	var result struct {
		OK     bool             `json:"ok"`
		Result []telegramUpdate `json:"result"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode polling response: %w", err)
	}
	return result.Result, nil
}

func (t *TelegramNotifier) dispatch(ctx context.Context, update telegramUpdate, onCommand CommandHandler, onPhoto PhotoHandler) {
	if update.Message == nil {
		return
	}

	var reply string
	if fileID := update.imageFileID(); fileID != "" {
		if onPhoto == nil {
			return
		}
		log.Printf("[INFO] received chart image (update %d)", update.UpdateID)
		image, err := t.DownloadFile(ctx, fileID)
		if err != nil {
			log.Printf("[ERROR] download chart: %v", err)
			reply = "❌ Could not download the image, please try again."
		} else {
			reply = onPhoto(ctx, image)
		}
	} else {
		text := strings.TrimSpace(update.Message.Text)
		if text == "" || onCommand == nil {
			return
		}
		log.Printf("[INFO] received command: %s", text)
		reply = onCommand(text)
	}

	if reply != "" {
		if err := t.Send(reply); err != nil {
			log.Printf("[ERROR] send reply: %v", err)
		}
	}
}
