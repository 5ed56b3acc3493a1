package mcpserver

// RecordFormatContract describes the record shapes that LLM consumers
// must follow when submitting records through the collect_record tool.
const RecordFormatContract = `# keepintouch Record Format Contract

Every record submitted to keepintouch MUST be a JSON object following the
shape of its service. Extra fields are allowed and stored as-is.

## Common rules

1. **datetime is required** and MUST use the format ` + "`YYYY-MM-DD HH:MM:SS`" + `
   (second precision, no timezone). Example: ` + "`2025-08-14 09:30:00`" + `.
2. **sender is required.** Free text. The name ` + "`Me`" + ` is reserved for the
   local user's own sent items.
3. Records are immutable once stored. There is no update or delete.

## calls

` + "```" + `json
{
  "datetime": "2025-08-14 09:30:00",
  "sender": "Sarah",
  "log_type": "incoming"
}
` + "```" + `

` + "`log_type`" + ` MUST be ` + "`incoming`" + ` or ` + "`outgoing`" + `.

## email

` + "```" + `json
{
  "datetime": "2025-08-14 09:30:00",
  "sender": "Jane Smith",
  "type": "received",
  "subject": "Meeting Reminder",
  "body": "Remember that meeting we had last week?",
  "attachments": []
}
` + "```" + `

` + "`type`" + ` MUST be ` + "`received`" + ` or ` + "`sent`" + `. ` + "`subject`" + ` and ` + "`body`" + ` are
required; ` + "`attachments`" + ` is optional.

## sms

` + "```" + `json
{
  "datetime": "2025-08-14 09:30:00",
  "sender": "Jane Smith",
  "type": "received",
  "content": "Let's catch up this weekend."
}
` + "```" + `

` + "`type`" + ` MUST be ` + "`received`" + ` or ` + "`sent`" + `. ` + "`content`" + ` is required.
`
