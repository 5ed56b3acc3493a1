package generator

// CallSenders is the fixed pool used by the continuous call generator.
var CallSenders = []string{"Sarah", "Tom", "David", "Emma", "John", "Alice"}

// Names is the 150-entry sender pool used for email and SMS
// conversations.
var Names = []string{
	"John Doe", "Jane Smith", "Alice Johnson", "Bob Brown", "Charlie Davis", "Eve Wilson", "Frank Moore", "Grace Taylor",
	"Hank Anderson", "Ivy Thomas", "Jack White", "Karen Harris", "Leo Martin", "Mia Thompson", "Nina Garcia", "Oscar Martinez",
	"Paul Robinson", "Quinn Clark", "Rachel Rodriguez", "Steve Lewis", "Tina Lee", "Uma Walker", "Victor Hall", "Wendy Allen",
	"Xander Young", "Yara Hernandez", "Zack King", "Aaron Wright", "Bella Lopez", "Caleb Hill", "Daisy Scott", "Eli Green",
	"Fiona Adams", "Gabe Baker", "Hazel Gonzalez", "Ian Nelson", "Jade Carter", "Kai Mitchell", "Luna Perez", "Mason Roberts",
	"Nora Turner", "Owen Phillips", "Penny Campbell", "Quincy Parker", "Riley Evans", "Sofia Edwards", "Theo Collins",
	"Ursula Stewart", "Violet Sanchez", "Wyatt Morris", "Xena Rogers", "Yvonne Reed", "Zane Cook", "Ava Morgan", "Blake Bell",
	"Cora Murphy", "Dexter Bailey", "Eva Rivera", "Felix Cooper", "Gwen Richardson", "Hugo Cox", "Isla Howard", "Jake Ward",
	"Kira Torres", "Liam Peterson", "Maya Gray", "Nolan Ramirez", "Olive James", "Peyton Watson", "Quinn Brooks",
	"Rory Kelly", "Sadie Sanders", "Tobias Price", "Uma Bennett", "Vera Wood", "Wade Barnes", "Xyla Ross", "Yara Henderson",
	"Zeke Coleman", "Aria Jenkins", "Brett Perry", "Clara Powell", "Dante Long", "Eliza Patterson", "Finn Hughes",
	"Gia Flores", "Hank Washington", "Ivy Butler", "Jett Simmons", "Kara Foster", "Luca Gonzales", "Mila Bryant",
	"Nash Alexander", "Ophelia Russell", "Parker Griffin", "Quinn Diaz", "Remy Hayes", "Sienna Myers", "Tucker Ford",
	"Uma Chavez", "Violet Murray", "Wes Ortiz", "Xander Vargas", "Yara Simpson", "Zeke Crawford", "Avery Black",
	"Brielle Holmes", "Cruz Stone", "Dahlia Meyer", "Emmett Boyd", "Freya Mills", "Gunner Warren", "Harlow Fox",
	"Ira Rose", "Jax Lane", "Kira Rice", "Luca Moreno", "Maren Schmidt", "Nash Patel", "Olive Ferguson", "Peyton Nichols",
	"Quinn Herrera", "Rory Medina", "Sadie Ryan", "Tobias Fernandez", "Uma Weber", "Vera Castillo", "Wade Harvey",
	"Xyla Hoffman", "Yara Elliott", "Zeke Cunningham", "Aria Knight", "Brett Bradley", "Clara Carroll", "Dante Hudson",
	"Eliza Duncan", "Finn Armstrong", "Gia Berry", "Hank Andrews", "Ivy Johnston", "Jett Ray", "Kara Lane",
}

// EmailSubjects is the subject pool for generated email conversations.
var EmailSubjects = []string{
	"Follow-up on Project Deadline",
	"Meeting Reminder",
	"Coffee Catch-Up",
	"New Software Issues",
	"Weekend Plans",
	"Book Recommendation",
	"Package Delivery Notification",
	"Trip Recommendations",
	"Report Submission",
	"Action Items from Last Meeting",
}

// ReceivedBodies is the body pool for generated received emails.
var ReceivedBodies = []string{
	"Hi, I just wanted to check in and see how you're doing. It's been a while since we last talked.",
	"I was thinking about our project deadline. Do you think we can meet it? Let's discuss tomorrow.",
	"Remember that meeting we had last week? I think we should follow up on the action items.",
	"I saw this interesting article and thought you might find it useful. Here's the link: [link]",
	"Can you send me the report by EOD? I need to review it before the meeting tomorrow.",
	"I'm planning a trip next month. Do you have any recommendations for places to visit?",
	"I just finished reading that book you recommended. It was fantastic! Thanks for the suggestion.",
	"I'm having some issues with the new software. Can you help me troubleshoot it?",
	"Let's catch up this weekend. How about we grab a coffee on Saturday?",
	"I just got a notification that your package has been delivered. Did you receive it?",
}

// SentBodies is the body pool for generated reply emails.
var SentBodies = []string{
	"Hey! I'm doing well, thanks for checking in. How about you?",
	"Yes, I think we can meet the deadline. Let's discuss the details tomorrow.",
	"I agree. I'll send a follow-up email to the team today.",
	"Thanks for sharing! I'll check it out later.",
	"Sure, I'll send the report by EOD.",
	"How about visiting the mountains? I heard it's beautiful this time of year.",
	"I'm glad you liked it! Let me know if you want more recommendations.",
	"Sure, I can help. What issues are you facing?",
	"Sounds great! Let's meet at 10 AM on Saturday.",
	"Yes, I received it. Thanks for letting me know!",
}

// ReceivedTexts is the content pool for generated received SMS.
var ReceivedTexts = []string{
	"Hey, I just wanted to check in and see how you're doing. It's been a while since we last talked.",
	"I was thinking about our project deadline. Do you think we can meet it? Let's discuss tomorrow.",
	"Remember that meeting we had last week? I think we should follow up on the action items.",
	"I saw this interesting article and thought you might find it useful. Here's the link: [link]",
	"Can you send me the report by EOD? I need to review it before the meeting tomorrow.",
	"I'm planning a trip next month. Do you have any recommendations for places to visit?",
	"I just finished reading that book you recommended. It was fantastic! Thanks for the suggestion.",
	"I'm having some issues with the new software. Can you help me troubleshoot it?",
	"Let's catch up this weekend. How about we grab a coffee on Saturday?",
	"I just got a notification that your package has been delivered. Did you receive it?",
}

// SentTexts is the content pool for generated SMS replies.
var SentTexts = []string{
	"Hey! I'm doing well, thanks for checking in. How about you?",
	"Yes, I think we can meet the deadline. Let's discuss the details tomorrow.",
	"I agree. I'll send a follow-up email to the team today.",
	"Thanks for sharing! I'll check it out later.",
	"Sure, I'll send the report by EOD.",
	"How about visiting the mountains? I heard it's beautiful this time of year.",
	"I'm glad you liked it! Let me know if you want more recommendations.",
	"Sure, I can help. What issues are you facing?",
	"Sounds great! Let's meet at 10 AM on Saturday.",
	"Yes, I received it. Thanks for letting me know!",
}
