// Command scholarseeker is a terminal front-end for the Scholar Seeker
// assistant: it reads questions from stdin, forwards them to the
// completion endpoint and prints the post-processed answers.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/scholar-seeker/scholarseeker"
)

func main() {
	config := scholarseeker.LoadConfig()

	model := flag.String("model", config.Model, "Completion model to query")
	baseURL := flag.String("base-url", config.BaseURL, "Completion endpoint base URL")
	guardModel := flag.String("guard-model", config.GuardModel, "Model for the topic guard (empty disables it)")
	stream := flag.Bool("stream", true, "Stream the answer as it is generated")
	flag.Parse()

	if config.APIKey == "" {
		fmt.Fprintln(os.Stderr, "Error: PERPLEXITY_API_KEY is not set")
		os.Exit(1)
	}

	llmConfig := config.LLMConfig()
	llmConfig.BaseURL = *baseURL
	llmConfig.Model = *model
	llmConfig.GuardModel = *guardModel

	ctx := context.Background()
	session := scholarseeker.NewSession(ctx, llmConfig, llmConfig.NewLLMClient())
	defer session.Close()

	policy := scholarseeker.DefaultRetryPolicy()
	policy.MaxAttempts = config.MaxAttempts
	session.SetRetryPolicy(policy)

	fmt.Println("Scholar Seeker — ask a scholarship question (/reset clears the conversation, ctrl-d quits)")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if question == "/reset" {
			session.State.Reset()
			fmt.Println("conversation cleared")
			continue
		}

		if *stream {
			streamTurn(session, question)
		} else {
			askTurn(ctx, session, question)
		}
	}
	fmt.Println()
}

func streamTurn(session *scholarseeker.Session, question string) {
	if err := session.In(question); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}

	sawPartial := false
	var citations []string
	for {
		msg := session.Out()
		switch msg.Type {
		case scholarseeker.MessageTypePartialText:
			sawPartial = true
			fmt.Print(msg.Content)
		case scholarseeker.MessageTypeFinalText:
			citations = msg.Citations
			if !sawPartial {
				fmt.Print(msg.Content)
			}
		case scholarseeker.MessageTypeError:
			fmt.Print(msg.Content)
		case scholarseeker.MessageTypeEnd:
			// Only this turn's sources; rejected and failed turns have none.
			fmt.Println()
			printCitations(citations)
			return
		}
	}
}

func askTurn(ctx context.Context, session *scholarseeker.Session, question string) {
	answer, citations, err := session.Ask(ctx, question)
	if err != nil && (errors.Is(err, scholarseeker.ErrSessionBusy) || errors.Is(err, scholarseeker.ErrSessionClosed)) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	fmt.Println(answer)
	printCitations(citations)
}

func printCitations(citations []string) {
	for i, url := range citations {
		fmt.Printf("  [%d] %s\n", i+1, url)
	}
}
