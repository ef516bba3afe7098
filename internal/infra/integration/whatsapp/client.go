package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/xavierca1/lembrete-consorcio/internal/infra/queue"
	"github.com/xavierca1/lembrete-consorcio/internal/usecase"
)

// Templates aprovados na conta Business, um por tipo de lembrete.
const (
	templateLembreteBoleto   = "lembrete_boleto"
	templateLembreteFollowUp = "lembrete_followup"
)

type Client struct {
	accessToken string
	phoneID     string
	baseURL     string
	http        *http.Client
}

func NewClient() *Client {
	return &Client{
		accessToken: os.Getenv("WHATSAPP_ACCESS_TOKEN"),
		phoneID:     os.Getenv("WHATSAPP_PHONE_ID"),
		baseURL:     "https://graph.facebook.com/v18.0",
		http:        http.DefaultClient,
	}
}

// SendReminder envia a mensagem de template do lembrete para o telefone do
// registro.
func (c *Client) SendReminder(ctx context.Context, payload queue.ReminderPayload) error {
	input := SendMessageInput{
		PhoneNumber:  NormalizePhone(payload.Phone),
		TemplateName: templateLembreteFollowUp,
		Parameters:   []string{payload.Name},
	}
	if payload.Kind == "boleto" {
		input.TemplateName = templateLembreteBoleto
		input.Parameters = []string{payload.Name, usecase.FormatBRL(payload.Value), payload.DueAt}
	}
	return c.SendMessage(ctx, input)
}

func (c *Client) SendMessage(ctx context.Context, input SendMessageInput) error {
	if c.accessToken == "" || c.phoneID == "" {
		log.Println("⚠️ WhatsApp: ACCESS_TOKEN ou PHONE_ID não configurados")
		return fmt.Errorf("whatsapp não configurado")
	}

	payload := map[string]interface{}{
		"messaging_product": "whatsapp",
		"recipient_type":    "individual",
		"to":                input.PhoneNumber,
		"type":              "template",
		"template": map[string]interface{}{
			"name": input.TemplateName,
			"language": map[string]string{
				"code": "pt_BR",
			},
			"components": []map[string]interface{}{
				{
					"type":       "body",
					"parameters": convertParametersToAPI(input.Parameters),
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("❌ WhatsApp: Erro ao serializar payload: %v", err)
		return err
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneID)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		log.Printf("❌ WhatsApp: Erro ao criar requisição: %v", err)
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("❌ WhatsApp: Erro na requisição: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		log.Printf("❌ WhatsApp: API retornou %d: %s", resp.StatusCode, string(respBody))
		return fmt.Errorf("whatsapp api status %d", resp.StatusCode)
	}

	return nil
}

func convertParametersToAPI(params []string) []apiParameter {
	out := make([]apiParameter, len(params))
	for i, p := range params {
		out[i] = apiParameter{Type: "text", Text: p}
	}
	return out
}
