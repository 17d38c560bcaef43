// SPDX-License-Identifier: EPL-2.0

package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audtrim/internal/logging"
)

const (
	// Path is the prediction endpoint relative to the base URL.
	Path = "/api/predict"

	// FieldName is the multipart field carrying the audio file.
	FieldName = "audio"

	// RequestIDHeader carries a per-call id for correlating backend logs.
	RequestIDHeader = "X-Request-ID"

	DefaultTimeout = 60 * time.Second
)

type Client struct {
	base string
	c    *http.Client
	log  logrus.FieldLogger

	// set by options, resolved into c by NewClient
	hc      *http.Client
	timeout time.Duration
}

type Option func(*Client)

// WithHTTPClient sends requests through a copy of c, so its transport and
// redirect policy apply. A nil c is ignored.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.hc = c }
}

// WithTimeout bounds each request. It applies to the client's own copy and
// never changes a client passed to WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) { cl.timeout = d }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(cl *Client) { cl.log = l }
}

func NewClient(baseURL string, opts ...Option) *Client {
	cl := &Client{
		base: strings.TrimRight(baseURL, "/"),
		log:  logging.Discard(),
	}

	for _, opt := range opts {
		opt(cl)
	}

	c := &http.Client{Timeout: DefaultTimeout}
	if cl.hc != nil {
		cp := *cl.hc
		c = &cp
	}
	if cl.timeout > 0 {
		c.Timeout = cl.timeout
	}
	cl.c = c

	return cl
}

// Predict uploads a WAV file and returns the backend's classification.
func (cl *Client) Predict(ctx context.Context, filename string, wav []byte) (*Result, error) {
	if filename == "" {
		return nil, ErrNoFilename
	}

	body, contentType, err := multipartBody(filename, wav)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cl.base+Path, body)
	if err != nil {
		return nil, fmt.Errorf("predict request: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("predict request id: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, id.String())

	log := cl.log.WithFields(logrus.Fields{"request_id": id.String(), "file": filename, "bytes": len(wav)})
	log.Debug("sending prediction request")

	started := time.Now()

	resp, err := cl.c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := readAPIError(resp)
		log.WithField("status", resp.StatusCode).Warn(apiErr.Message)
		return nil, apiErr
	}

	var out Result
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("predict decode: %w", err)
	}

	if err := out.validate(); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"emotion":    out.Emotion,
		"confidence": out.Confidence,
		"took":       time.Since(started).String(),
	}).Info("prediction received")

	return &out, nil
}

func multipartBody(filename string, wav []byte) (*bytes.Buffer, string, error) {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, FieldName, filename))
	h.Set("Content-Type", "audio/wav")

	fw, err := w.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("predict form: %w", err)
	}

	if _, err := fw.Write(wav); err != nil {
		return nil, "", fmt.Errorf("predict form: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("predict form: %w", err)
	}

	return &b, w.FormDataContentType(), nil
}

func readAPIError(resp *http.Response) *APIError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var body struct {
		Error string `json:"error"`
	}

	msg := strings.TrimSpace(string(raw))
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		msg = body.Error
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	return &APIError{Status: resp.StatusCode, Message: msg}
}
