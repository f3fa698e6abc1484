package phrase

// enAr is the curated English→Arabic phrase table. Multi-word phrases come
// first so decomposition and containment checks hit the longest entry before
// any of its fragments.
var enAr = []Entry{
	// Complete phrases first (highest priority)
	{"this is a test of the translation system", "هذا اختبار لنظام الترجمة"},
	{"immediate speech recognition", "التعرف الفوري على الكلام"},
	{"translation system", "نظام الترجمة"},
	{"speech recognition", "التعرف على الكلام"},

	// Extended conversation phrases
	{"hello how are you today", "مرحبا كيف حالك اليوم"},
	{"what is your name", "ما اسمك"},
	{"my name is", "اسمي"},
	{"nice to meet you", "سعيد بلقائك"},
	{"how old are you", "كم عمرك"},
	{"where are you from", "من أين أنت"},
	{"what time is it", "كم الساعة"},
	{"i dont understand", "لا أفهم"},
	{"can you help me", "هل يمكنك مساعدتي"},
	{"speak slowly please", "تكلم ببطء من فضلك"},
	{"i need help", "أحتاج مساعدة"},
	{"thank you very much", "شكرا جزيلا"},
	{"you are welcome", "على الرحب والسعة"},
	{"have a good day", "نهارك سعيد"},
	{"see you later", "أراك لاحقا"},
	{"see you tomorrow", "أراك غدا"},
	{"good luck", "حظا سعيدا"},
	{"take care", "اعتن بنفسك"},
	{"i love you", "أحبك"},
	{"i miss you", "أشتاق إليك"},
	{"how much does it cost", "كم يكلف هذا"},
	{"where is the bathroom", "أين الحمام"},
	{"i am hungry", "أنا جائع"},
	{"i am thirsty", "أنا عطشان"},
	{"i am tired", "أنا متعب"},
	{"i am sick", "أنا مريض"},
	{"call a doctor", "اتصل بطبيب"},
	{"call the police", "اتصل بالشرطة"},
	{"where is the hospital", "أين المستشفى"},
	{"i need a taxi", "أحتاج تاكسي"},
	{"how do i get to", "كيف أصل إلى"},
	{"turn left", "انعطف يسارا"},
	{"turn right", "انعطف يمينا"},
	{"go straight", "اذهب مباشرة"},
	{"stop here", "توقف هنا"},
	{"wait for me", "انتظرني"},
	{"come with me", "تعال معي"},
	{"follow me", "اتبعني"},
	{"let me think", "دعني أفكر"},
	{"i dont know", "لا أعرف"},
	{"maybe later", "ربما لاحقا"},
	{"not right now", "ليس الآن"},
	{"of course", "بالطبع"},
	{"no problem", "لا مشكلة"},
	{"dont worry", "لا تقلق"},
	{"be careful", "كن حذرا"},
	{"pay attention", "انتبه"},
	{"listen to me", "استمع إلي"},
	{"look at this", "انظر إلى هذا"},
	{"what do you think", "ما رأيك"},
	{"i think so", "أعتقد ذلك"},
	{"i dont think so", "لا أعتقد ذلك"},
	{"that is correct", "هذا صحيح"},
	{"that is wrong", "هذا خطأ"},
	{"try again", "حاول مرة أخرى"},
	{"well done", "أحسنت"},
	{"congratulations", "مبروك"},
	{"happy birthday", "عيد ميلاد سعيد"},
	{"happy new year", "سنة جديدة سعيدة"},

	// Weather and environment
	{"the weather is beautiful today", "الطقس جميل اليوم"},
	{"nice weather today", "الطقس جميل اليوم"},
	{"it is raining", "إنها تمطر"},
	{"it is sunny", "الجو مشمس"},
	{"it is cloudy", "الجو غائم"},
	{"it is cold", "الجو بارد"},
	{"it is hot", "الجو حار"},

	// Food and dining
	{"what would you like to eat", "ماذا تريد أن تأكل"},
	{"what would you like to drink", "ماذا تريد أن تشرب"},
	{"the food is delicious", "الطعام لذيذ"},
	{"i am full", "أنا شبعان"},
	{"check please", "الحساب من فضلك"},
	{"i would like to order", "أريد أن أطلب"},
	{"i am vegetarian", "أنا نباتي"},
	{"more water please", "المزيد من الماء من فضلك"},
	{"this is too spicy", "هذا حار جدا"},
	{"this is perfect", "هذا مثالي"},

	// Shopping and money
	{"how much does this cost", "كم يكلف هذا"},
	{"that is too expensive", "هذا غالي جدا"},
	{"do you have something cheaper", "هل لديك شيء أرخص"},
	{"i will take it", "سآخذه"},
	{"can i pay by card", "هل يمكنني الدفع بالبطاقة"},
	{"cash only", "نقدا فقط"},
	{"i need a receipt", "أحتاج إيصالا"},
	{"is there a discount", "هل يوجد خصم"},

	// Transportation
	{"where is the bus station", "أين محطة الحافلات"},
	{"where is the train station", "أين محطة القطار"},
	{"where is the airport", "أين المطار"},
	{"how long does it take", "كم من الوقت يستغرق"},
	{"is it far from here", "هل هو بعيد من هنا"},
	{"take me to the airport", "خذني إلى المطار"},
	{"take me to the hotel", "خذني إلى الفندق"},
	{"slow down please", "أبطئ من فضلك"},
	{"keep the change", "احتفظ بالباقي"},

	// Hotel and accommodation
	{"i have a reservation", "لدي حجز"},
	{"i would like to check in", "أريد تسجيل الوصول"},
	{"i would like to check out", "أريد تسجيل المغادرة"},
	{"where is the elevator", "أين المصعد"},
	{"do you have wifi", "هل لديكم واي فاي"},
	{"what is the wifi password", "ما هي كلمة مرور الواي فاي"},
	{"i need more towels", "أحتاج المزيد من المناشف"},

	// Emergency and health
	{"help me", "ساعدني"},
	{"call an ambulance", "اتصل بسيارة إسعاف"},
	{"i need a doctor", "أحتاج طبيبا"},
	{"where is the nearest hospital", "أين أقرب مستشفى"},
	{"i am hurt", "أنا مصاب"},
	{"i am lost", "أنا تائه"},
	{"i lost my passport", "فقدت جواز سفري"},
	{"i lost my wallet", "فقدت محفظتي"},
	{"where is the police station", "أين مركز الشرطة"},
	{"i need medicine", "أحتاج دواء"},
	{"i have a headache", "لدي صداع"},
	{"i have a fever", "لدي حمى"},
	{"i have a cold", "لدي نزلة برد"},

	// Technology and communication
	{"do you have internet", "هل لديكم إنترنت"},
	{"can i use your phone", "هل يمكنني استخدام هاتفكم"},
	{"where can i charge my phone", "أين يمكنني شحن هاتفي"},
	{"can you take a photo", "هل يمكنك التقاط صورة"},
	{"what is your phone number", "ما هو رقم هاتفك"},
	{"send me a message", "أرسل لي رسالة"},
	{"i will call you later", "سأتصل بك لاحقا"},

	// Common greetings and phrases
	{"hello", "مرحبا"},
	{"hi", "مرحبا"},
	{"good morning", "صباح الخير"},
	{"good afternoon", "مساء الخير"},
	{"good evening", "مساء الخير"},
	{"good night", "تصبح على خير"},
	{"how are you", "كيف حالك"},
	{"fine thank you", "بخير شكرا"},
	{"and you", "وأنت"},
	{"thank you", "شكرا لك"},
	{"thanks", "شكرا"},
	{"please", "من فضلك"},
	{"excuse me", "اعذرني"},
	{"sorry", "آسف"},
	{"yes", "نعم"},
	{"no", "لا"},
	{"maybe", "ربما"},
	{"okay", "حسنا"},
	{"sure", "بالتأكيد"},
	{"exactly", "بالضبط"},
	{"i agree", "أوافق"},
	{"i understand", "أفهم"},
	{"that is interesting", "هذا مثير للاهتمام"},
	{"that is amazing", "هذا مذهل"},
	{"that is wonderful", "هذا رائع"},
	{"that is beautiful", "هذا جميل"},
	{"that is big", "هذا كبير"},
	{"that is small", "هذا صغير"},
	{"that is expensive", "هذا غالي"},
	{"that is cheap", "هذا رخيص"},
	{"that is easy", "هذا سهل"},
	{"that is difficult", "هذا صعب"},
	{"that is important", "هذا مهم"},

	// Pronouns and basic words
	{"i", "أنا"},
	{"you", "أنت"},
	{"he", "هو"},
	{"she", "هي"},
	{"we", "نحن"},
	{"they", "هم"},
	{"this", "هذا"},
	{"that", "ذلك"},
	{"the", "ال"},
	{"and", "و"},
	{"or", "أو"},
	{"but", "لكن"},
	{"with", "مع"},
	{"for", "لـ"},
	{"to", "إلى"},
	{"from", "من"},
	{"in", "في"},
	{"on", "على"},
	{"of", "من"},

	// Verbs
	{"is", "هو"},
	{"are", "تكون"},
	{"was", "كان"},
	{"be", "يكون"},
	{"have", "لديه"},
	{"has", "لديه"},
	{"go", "يذهب"},
	{"went", "ذهب"},
	{"come", "يأتي"},
	{"see", "يرى"},
	{"look", "ينظر"},
	{"get", "يحصل"},
	{"give", "يعطي"},
	{"take", "يأخذ"},
	{"make", "يصنع"},
	{"know", "يعرف"},
	{"think", "يفكر"},
	{"say", "يقول"},
	{"tell", "يخبر"},
	{"speak", "يتكلم"},
	{"talk", "يتحدث"},
	{"listen", "يستمع"},
	{"hear", "يسمع"},
	{"read", "يقرأ"},
	{"write", "يكتب"},
	{"learn", "يتعلم"},
	{"teach", "يعلم"},
	{"understand", "يفهم"},
	{"help", "يساعد"},
	{"need", "يحتاج"},
	{"want", "يريد"},
	{"like", "يحب"},
	{"love", "يحب"},
	{"eat", "يأكل"},
	{"drink", "يشرب"},
	{"sleep", "ينام"},
	{"work", "يعمل"},
	{"play", "يلعب"},
	{"buy", "يشتري"},
	{"sell", "يبيع"},
	{"find", "يجد"},
	{"start", "يبدأ"},
	{"stop", "يتوقف"},
	{"finish", "ينهي"},
	{"open", "يفتح"},
	{"close", "يغلق"},
	{"walk", "يمشي"},
	{"run", "يجري"},
	{"drive", "يقود"},
	{"sit", "يجلس"},
	{"stand", "يقف"},
	{"bring", "يجلب"},
	{"carry", "يحمل"},
	{"send", "يرسل"},
	{"call", "يتصل"},
	{"answer", "يجيب"},
	{"ask", "يسأل"},
	{"show", "يظهر"},
	{"try", "يحاول"},
	{"use", "يستخدم"},
	{"change", "يغير"},
	{"keep", "يحتفظ"},
	{"leave", "يغادر"},
	{"stay", "يبقى"},
	{"wait", "ينتظر"},
	{"follow", "يتبع"},
	{"meet", "يقابل"},
	{"visit", "يزور"},
	{"live", "يعيش"},
	{"remember", "يتذكر"},
	{"forget", "ينسى"},
	{"feel", "يشعر"},
	{"smile", "يبتسم"},
	{"laugh", "يضحك"},
}

// enArCommon is the secondary common-words table consulted only during
// decomposition, after the main table and morphological variants miss.
var enArCommon = map[string]string{
	"it": "هو", "me": "أنا", "my": "لي", "your": "لك", "his": "له", "her": "لها",
	"our": "لنا", "their": "لهم", "do": "يفعل", "does": "يفعل", "did": "فعل",
	"will": "سوف", "would": "كان سيفعل", "should": "يجب", "could": "استطاع",
	"may": "قد", "might": "ربما", "must": "يجب",
	"not": "ليس", "all": "كل", "some": "بعض",
	"any": "أي", "every": "كل", "each": "كل", "both": "كلا",
	"here": "هنا", "there": "هناك", "where": "أين", "when": "متى",
	"why": "لماذا", "how": "كيف", "what": "ماذا", "which": "أي",
	"who": "من", "now": "الآن", "then": "ثم", "soon": "قريبا",
	"later": "لاحقا", "before": "قبل", "after": "بعد", "during": "أثناء",
	"while": "بينما", "until": "حتى", "since": "منذ", "always": "دائما",
	"never": "أبدا", "sometimes": "أحيانا", "often": "غالبا",
	"usually": "عادة", "quickly": "بسرعة", "slowly": "ببطء",
	"very": "جدا", "too": "جدا", "so": "جدا", "really": "حقا",
	"about": "حول", "around": "حول", "near": "قريب", "far": "بعيد",
	"inside": "داخل", "outside": "خارج", "above": "فوق", "below": "تحت",
	"under": "تحت", "over": "فوق", "through": "خلال", "across": "عبر",
	"between": "بين", "behind": "خلف", "beside": "بجانب",
	"next": "التالي", "first": "أول", "last": "آخر", "second": "ثاني",
	"one": "واحد", "two": "اثنان", "three": "ثلاثة", "four": "أربعة",
	"five": "خمسة", "six": "ستة", "seven": "سبعة", "eight": "ثمانية",
	"nine": "تسعة", "ten": "عشرة", "hundred": "مائة", "thousand": "ألف",
	"red": "أحمر", "blue": "أزرق", "green": "أخضر", "yellow": "أصفر",
	"black": "أسود", "white": "أبيض",
	"morning": "صباح", "afternoon": "بعد الظهر", "evening": "مساء",
	"night": "ليل", "day": "يوم", "week": "أسبوع", "month": "شهر",
	"year": "سنة", "hour": "ساعة", "minute": "دقيقة",
	"head": "رأس", "eye": "عين", "hand": "يد", "foot": "قدم",
	"father": "أب", "mother": "أم", "son": "ابن", "daughter": "ابنة",
	"brother": "أخ", "sister": "أخت", "child": "طفل", "children": "أطفال",
	"book": "كتاب", "pen": "قلم", "paper": "ورق", "table": "طاولة",
	"chair": "كرسي", "door": "باب", "window": "نافذة", "room": "غرفة",
	"kitchen": "مطبخ", "street": "شارع", "city": "مدينة",
	"country": "بلد", "world": "عالم", "weather": "طقس", "water": "ماء",
}
