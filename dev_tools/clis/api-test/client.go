package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultBase         = "http://localhost:9000"
	walletAddressHeader = "X-Wallet-Address"
)

type apiClient struct {
	base   string
	wallet string
	http   *http.Client
	out    io.Writer
}

func (c *apiClient) url(path string) string {
	return strings.TrimSuffix(c.base, "/") + "/v1/" + strings.TrimPrefix(path, "/")
}

func (c *apiClient) getJSON(path string) error {
	return c.do(http.MethodGet, path, "", nil)
}

func (c *apiClient) postJSON(path string, payload any) error {
	var body io.Reader
	if payload != nil {
		msg, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(msg)
	}
	return c.do(http.MethodPost, path, "application/json", body)
}

func (c *apiClient) upload(path, studentAddress, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("student_address", studentAddress); err != nil {
		return err
	}
	part, err := form.CreateFormFile("file", filepath.Base(file))
	if err != nil {
		return err
	}
	if _, err := part.Write(data); err != nil {
		return err
	}
	if err := form.Close(); err != nil {
		return err
	}
	return c.do(http.MethodPost, path, form.FormDataContentType(), &buf)
}

func (c *apiClient) do(method, path, contentType string, body io.Reader) error {
	url := c.url(path)
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.wallet != "" {
		req.Header.Set(walletAddressHeader, c.wallet)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	fmt.Fprintf(c.out, "→ %s %s\n", method, url)
	fmt.Fprintf(c.out, "← %d %s\n\n", res.StatusCode, http.StatusText(res.StatusCode))
	if _, err := io.Copy(c.out, res.Body); err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	fmt.Fprintln(c.out)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("HTTP %d - %s", res.StatusCode, http.StatusText(res.StatusCode))
	}
	return nil
}
