package services

import (
	"fmt"
	"strings"
)

const threadSystemPrompt = `You are an expert content strategist who creates highly focused Twitter threads.
Your threads are known for:
- Staying strictly on topic
- Using specific examples from the input
- Never including generic advice
- Being concise and information-dense
- Converting the given content directly into tweet format

You always ensure each tweet directly relates to the input content and avoid generic statements.`

const tweetSystemPrompt = `You are a social media expert who creates engaging tweets.`

const bioSystemPrompt = `You are an expert at creating engaging social media bios.`

var toneInstructions = map[string]string{
	"neutral":      "Use a balanced and objective tone",
	"formal":       "Use a professional and academic tone",
	"casual":       "Use a friendly and conversational tone",
	"enthusiastic": "Use an energetic and excited tone",
}

var bioToneInstructions = map[string]string{
	"professional": "Keep it formal and business-focused",
	"casual":       "Make it friendly and approachable",
	"creative":     "Add personality and creative flair",
	"technical":    "Focus on technical expertise and achievements",
}

func toneInstruction(tone string) string {
	if instruction, ok := toneInstructions[tone]; ok {
		return instruction
	}
	return "Use a balanced tone"
}

func buildThreadPrompt(content string, threadLength int, tone, writingStyle string) string {
	styleInstruction := ""
	if writingStyle != "" {
		styleInstruction = fmt.Sprintf("Match this writing style/voice in the generated tweets:\n%s\n", writingStyle)
	}

	return fmt.Sprintf(`Create an engaging Twitter thread that feels natural and conversational while covering the given content.
Each tweet should start with a number (1., 2., etc.).

%s
Key Points:
- First tweet should hook readers naturally - avoid "In this thread..." or "Let's talk about..."
- Jump straight into the topic with an interesting angle or surprising fact
- Each tweet must be under 280 characters
- Focus on specific insights from the content
- Use real examples and details from the given content

Thread Flow:
- Tweet 1: Start with an attention-grabbing insight or statement that makes people want to read more
- Middle Tweets: Break down key points with specific examples
- Final Tweet: Wrap up with main takeaways + relevant hashtags

Style Guide:
- Write like you're talking to a friend
- Use natural language and avoid corporate/formal phrases
- Include 1-2 fitting emojis per tweet
- Break complex ideas into digestible points

Important:
- Keep everything specific to the input content
- Generate exactly %d tweets
- %s
- Avoid phrases like "Thread" or "Let me explain"
- Don't use generic transitions between tweets

Content to transform into a thread:
%s`, styleInstruction, threadLength, toneInstruction(tone), content)
}

func buildTweetPrompt(topic, tone, writingStyle string) string {
	styleInstruction := ""
	if writingStyle != "" {
		styleInstruction = "\n" + writingStyle
	}

	return fmt.Sprintf(`Create an engaging tweet about the following topic.

Topic: %s

Requirements:
- Must be under 280 characters
- Include 1-2 relevant emojis
- Be specific and informative
- %s%s

Style Guide:
- Write naturally and conversationally
- Avoid hashtag spam
- Make it shareable and engaging
- Focus on providing value`, topic, toneInstruction(tone), styleInstruction)
}

func buildBioPrompt(name, expertise string, interests []string, tone string) string {
	instruction, ok := bioToneInstructions[tone]
	if !ok {
		instruction = "Keep it professional"
	}

	return fmt.Sprintf(`Create a compelling Twitter bio for:

Name: %s
Expertise: %s
Interests: %s

Requirements:
- Maximum 160 characters
- Include 1-2 relevant emojis
- %s
- Highlight expertise and personality

Style Guide:
- Be concise but informative
- Show personality while maintaining professionalism
- Include key achievements/roles
- Make it memorable`, name, expertise, strings.Join(interests, ", "), instruction)
}
