package curriculum

func init() {
	p = buildPlan(seedLessons)
}

// seedLessons is the fixed 12-week SEE study plan: five days a week,
// Individuals first, then Businesses, then Representation.
var seedLessons = []Lesson{
	// Week 1: filing fundamentals
	{Week: 1, Day: 1, Phase: PhaseIndividuals, Topic: "Filing requirements and due dates",
		Description: "Who must file, income thresholds by filing status, return due dates and extensions.",
		Citation:    "IRC §6012; Pub 17", ExamPart: Part1},
	{Week: 1, Day: 2, Phase: PhaseIndividuals, Topic: "Filing status",
		Description: "The five filing statuses, qualifying rules, and year-of-change situations.",
		Citation:    "IRC §2; Pub 501", ExamPart: Part1},
	{Week: 1, Day: 3, Phase: PhaseIndividuals, Topic: "Dependents",
		Description: "Qualifying child and qualifying relative tests, tiebreaker rules, multiple support agreements.",
		Citation:    "IRC §152; Pub 501", ExamPart: Part1},
	{Week: 1, Day: 4, Phase: PhaseIndividuals, Topic: "Gross income inclusions",
		Description: "Wages, tips, bartering, prizes, and the broad reach of the section 61 definition.",
		Citation:    "IRC §61; Pub 525", ExamPart: Part1},
	{Week: 1, Day: 5, Phase: PhaseIndividuals, Topic: "Gross income exclusions",
		Description: "Gifts, inheritances, municipal bond interest, physical injury awards, and fringe benefits.",
		Citation:    "IRC §§101-140; Pub 525", ExamPart: Part1},

	// Week 2: income specifics
	{Week: 2, Day: 6, Phase: PhaseIndividuals, Topic: "Interest and dividend income",
		Description: "Ordinary versus qualified dividends, OID basics, and nominee reporting.",
		Citation:    "IRC §§61, 1(h); Pub 550", ExamPart: Part1},
	{Week: 2, Day: 7, Phase: PhaseIndividuals, Topic: "Self-employment income",
		Description: "Schedule C gross receipts, SE tax computation, and the 92.35 percent base.",
		Citation:    "IRC §1402; Pub 334", ExamPart: Part1},
	{Week: 2, Day: 8, Phase: PhaseIndividuals, Topic: "Rental income and expenses",
		Description: "Schedule E reporting, vacation-home limits, and passive loss allowances for rentals.",
		Citation:    "IRC §280A; Pub 527", ExamPart: Part1},
	{Week: 2, Day: 9, Phase: PhaseIndividuals, Topic: "Retirement distributions",
		Description: "IRA and pension distributions, early-withdrawal penalties, and required minimum distributions.",
		Citation:    "IRC §§72, 408; Pub 590-B", ExamPart: Part1},
	{Week: 2, Day: 10, Phase: PhaseIndividuals, Topic: "Taxation of Social Security benefits",
		Description: "Provisional income tiers and the 50 and 85 percent inclusion ceilings.",
		Citation:    "IRC §86; Pub 915", ExamPart: Part1},

	// Week 3: adjustments and deductions
	{Week: 3, Day: 11, Phase: PhaseIndividuals, Topic: "Adjustments to income",
		Description: "Educator expenses, HSA contributions, SE tax deduction, and student loan interest.",
		Citation:    "IRC §62; Pub 17", ExamPart: Part1},
	{Week: 3, Day: 12, Phase: PhaseIndividuals, Topic: "Standard versus itemized deductions",
		Description: "Standard deduction amounts, additional amounts for age and blindness, when itemizing wins.",
		Citation:    "IRC §63; Pub 501", ExamPart: Part1},
	{Week: 3, Day: 13, Phase: PhaseIndividuals, Topic: "Itemized deductions",
		Description: "Medical expense floor, SALT cap, mortgage interest limits, and casualty losses.",
		Citation:    "IRC §§163, 164, 213; Pub 17", ExamPart: Part1},
	{Week: 3, Day: 14, Phase: PhaseIndividuals, Topic: "Charitable contributions",
		Description: "AGI percentage limits, substantiation requirements, and noncash donation rules.",
		Citation:    "IRC §170; Pub 526", ExamPart: Part1},
	{Week: 3, Day: 15, Phase: PhaseIndividuals, Topic: "Qualified business income deduction",
		Description: "The 20 percent deduction, taxable income thresholds, and specified service trades.",
		Citation:    "IRC §199A; Form 8995 instructions", ExamPart: Part1},

	// Week 4: credits and additional taxes
	{Week: 4, Day: 16, Phase: PhaseIndividuals, Topic: "Child tax credit",
		Description: "Credit amounts, the credit for other dependents, phaseouts, and refundability.",
		Citation:    "IRC §24; Schedule 8812 instructions", ExamPart: Part1},
	{Week: 4, Day: 17, Phase: PhaseIndividuals, Topic: "Earned income tax credit",
		Description: "Eligibility rules, investment income limit, and common disqualifications.",
		Citation:    "IRC §32; Pub 596", ExamPart: Part1},
	{Week: 4, Day: 18, Phase: PhaseIndividuals, Topic: "Education credits",
		Description: "American Opportunity and Lifetime Learning credits, qualified expenses, coordination rules.",
		Citation:    "IRC §25A; Pub 970", ExamPart: Part1},
	{Week: 4, Day: 19, Phase: PhaseIndividuals, Topic: "Dependent care and other credits",
		Description: "Child and dependent care credit, saver's credit, and residential energy credits.",
		Citation:    "IRC §§21, 25B; Pub 503", ExamPart: Part1},
	{Week: 4, Day: 20, Phase: PhaseIndividuals, Topic: "Additional taxes",
		Description: "Alternative minimum tax, net investment income tax, additional Medicare tax, kiddie tax.",
		Citation:    "IRC §§1(g), 55, 1411; Form 6251 instructions", ExamPart: Part1},

	// Week 5: property and specialty topics
	{Week: 5, Day: 21, Phase: PhaseIndividuals, Topic: "Basis of property",
		Description: "Cost basis, gift basis with the dual-basis rule, and stepped-up basis at death.",
		Citation:    "IRC §§1012, 1014, 1015; Pub 551", ExamPart: Part1},
	{Week: 5, Day: 22, Phase: PhaseIndividuals, Topic: "Capital gains and losses",
		Description: "Holding periods, netting order, the 3,000 dollar loss limit, and carryovers.",
		Citation:    "IRC §§1211, 1222; Pub 550", ExamPart: Part1},
	{Week: 5, Day: 23, Phase: PhaseIndividuals, Topic: "Sale of a principal residence",
		Description: "The section 121 exclusion, ownership and use tests, and partial exclusions.",
		Citation:    "IRC §121; Pub 523", ExamPart: Part1},
	{Week: 5, Day: 24, Phase: PhaseIndividuals, Topic: "Estimated taxes and withholding",
		Description: "Safe harbor percentages, underpayment penalties, and annualized installments.",
		Citation:    "IRC §6654; Pub 505", ExamPart: Part1},
	{Week: 5, Day: 25, Phase: PhaseIndividuals, Topic: "Gift and estate tax fundamentals",
		Description: "Annual exclusion, unified credit, gift splitting, and filing thresholds.",
		Citation:    "IRC §§2010, 2503; Form 709 instructions", ExamPart: Part1},

	// Week 6: business entities and accounting
	{Week: 6, Day: 26, Phase: PhaseBusinesses, Topic: "Business entity types",
		Description: "Sole proprietorships, partnerships, C and S corporations, and LLC classifications.",
		Citation:    "Pub 583; Pub 3402", ExamPart: Part2},
	{Week: 6, Day: 27, Phase: PhaseBusinesses, Topic: "Accounting periods and methods",
		Description: "Cash versus accrual, required tax years, and section 481 adjustments.",
		Citation:    "IRC §§446, 481; Pub 538", ExamPart: Part2},
	{Week: 6, Day: 28, Phase: PhaseBusinesses, Topic: "Business income and cost of goods sold",
		Description: "Gross receipts, inventories, and the small business taxpayer exceptions.",
		Citation:    "IRC §471; Pub 334", ExamPart: Part2},
	{Week: 6, Day: 29, Phase: PhaseBusinesses, Topic: "Business expenses",
		Description: "Ordinary and necessary expenses, meals limits, and the business interest limitation.",
		Citation:    "IRC §§162, 163(j); Pub 334", ExamPart: Part2},
	{Week: 6, Day: 30, Phase: PhaseBusinesses, Topic: "Depreciation and amortization",
		Description: "MACRS classes and conventions, section 179 expensing, and bonus depreciation.",
		Citation:    "IRC §§167, 168, 179; Pub 946", ExamPart: Part2},

	// Week 7: partnerships
	{Week: 7, Day: 31, Phase: PhaseBusinesses, Topic: "Partnership formation and basis",
		Description: "Nonrecognition on contribution, inside versus outside basis, and holding periods.",
		Citation:    "IRC §§721-723; Pub 541", ExamPart: Part2},
	{Week: 7, Day: 32, Phase: PhaseBusinesses, Topic: "Partnership income and allocations",
		Description: "Separately stated items, guaranteed payments, and Schedule K-1 reporting.",
		Citation:    "IRC §§701-704; Pub 541", ExamPart: Part2},
	{Week: 7, Day: 33, Phase: PhaseBusinesses, Topic: "Partner loss limitations",
		Description: "Basis, at-risk, and passive activity ordering for deducting partnership losses.",
		Citation:    "IRC §§704(d), 465, 469; Pub 541", ExamPart: Part2},
	{Week: 7, Day: 34, Phase: PhaseBusinesses, Topic: "Partnership distributions",
		Description: "Current and liquidating distributions, gain recognition, and basis of distributed property.",
		Citation:    "IRC §§731-732; Pub 541", ExamPart: Part2},
	{Week: 7, Day: 35, Phase: PhaseBusinesses, Topic: "Partnership interests and terminations",
		Description: "Sales of partnership interests, hot assets, and section 754 elections.",
		Citation:    "IRC §§741, 751, 754; Pub 541", ExamPart: Part2},

	// Week 8: corporations
	{Week: 8, Day: 36, Phase: PhaseBusinesses, Topic: "C corporation formation and income",
		Description: "Section 351 transfers, the flat corporate rate, and dividends-received deduction.",
		Citation:    "IRC §§11, 243, 351; Pub 542", ExamPart: Part2},
	{Week: 8, Day: 37, Phase: PhaseBusinesses, Topic: "Corporate distributions",
		Description: "Earnings and profits, dividend ordering, and stock redemption treatment.",
		Citation:    "IRC §§301, 316; Pub 542", ExamPart: Part2},
	{Week: 8, Day: 38, Phase: PhaseBusinesses, Topic: "S corporation eligibility and elections",
		Description: "Shareholder limits, one class of stock, Form 2553, and termination events.",
		Citation:    "IRC §§1361-1362; Form 2553 instructions", ExamPart: Part2},
	{Week: 8, Day: 39, Phase: PhaseBusinesses, Topic: "S corporation income and shareholder basis",
		Description: "Pass-through items, stock and debt basis ordering, and distribution taxation.",
		Citation:    "IRC §§1366-1368; Form 1120-S instructions", ExamPart: Part2},
	{Week: 8, Day: 40, Phase: PhaseBusinesses, Topic: "Employment taxes and reasonable compensation",
		Description: "FICA and FUTA obligations, deposit schedules, and officer compensation scrutiny.",
		Citation:    "IRC §§3111, 3301; Pub 15", ExamPart: Part2},

	// Week 9: special business topics
	{Week: 9, Day: 41, Phase: PhaseBusinesses, Topic: "Business property transactions",
		Description: "Section 1231 netting and depreciation recapture under sections 1245 and 1250.",
		Citation:    "IRC §§1231, 1245, 1250; Pub 544", ExamPart: Part2},
	{Week: 9, Day: 42, Phase: PhaseBusinesses, Topic: "Like-kind exchanges and involuntary conversions",
		Description: "Real property exchanges, boot, and replacement periods after condemnations.",
		Citation:    "IRC §§1031, 1033; Pub 544", ExamPart: Part2},
	{Week: 9, Day: 43, Phase: PhaseBusinesses, Topic: "Net operating losses and business credits",
		Description: "NOL carryforward rules, the 80 percent limit, and the general business credit.",
		Citation:    "IRC §§38, 172; Pub 536", ExamPart: Part2},
	{Week: 9, Day: 44, Phase: PhaseBusinesses, Topic: "Farm taxation",
		Description: "Schedule F income, crop insurance deferrals, and farm income averaging.",
		Citation:    "IRC §1301; Pub 225", ExamPart: Part2},
	{Week: 9, Day: 45, Phase: PhaseBusinesses, Topic: "Exempt organizations, trusts, and estates",
		Description: "Form 990 filing tiers, fiduciary returns, and distributable net income basics.",
		Citation:    "IRC §§501, 641; Pub 557", ExamPart: Part2},

	// Week 10: practice before the IRS
	{Week: 10, Day: 46, Phase: PhaseRepresentation, Topic: "Practice before the IRS",
		Description: "Who may practice, enrolled agent enrollment and renewal cycles, and CE requirements.",
		Citation:    "Treasury Circular 230 §§10.3-10.6", ExamPart: Part3},
	{Week: 10, Day: 47, Phase: PhaseRepresentation, Topic: "Power of attorney and authorizations",
		Description: "Form 2848 versus Form 8821, CAF numbers, and the scope of each authorization.",
		Citation:    "Circular 230 §10.7; Form 2848 instructions", ExamPart: Part3},
	{Week: 10, Day: 48, Phase: PhaseRepresentation, Topic: "Practitioner duties and restrictions",
		Description: "Diligence as to accuracy, conflicts of interest, fees, and solicitation limits.",
		Citation:    "Circular 230 §§10.20-10.37", ExamPart: Part3},
	{Week: 10, Day: 49, Phase: PhaseRepresentation, Topic: "Sanctions and disciplinary proceedings",
		Description: "Censure, suspension, disbarment, monetary penalties, and the OPR process.",
		Citation:    "Circular 230 §§10.50-10.82", ExamPart: Part3},
	{Week: 10, Day: 50, Phase: PhaseRepresentation, Topic: "Preparer responsibilities and penalties",
		Description: "PTIN requirements, section 6694 standards, and refundable-credit due diligence.",
		Citation:    "IRC §§6694-6695; Form 8867 instructions", ExamPart: Part3},

	// Week 11: compliance and procedures
	{Week: 11, Day: 51, Phase: PhaseRepresentation, Topic: "Return positions and disclosure",
		Description: "Substantial authority, reasonable basis, and when Form 8275 disclosure protects.",
		Citation:    "Circular 230 §10.34; IRC §6662", ExamPart: Part3},
	{Week: 11, Day: 52, Phase: PhaseRepresentation, Topic: "E-file requirements",
		Description: "ERO duties, Form 8879 retention, rejection handling, and e-file mandates.",
		Citation:    "Pub 1345", ExamPart: Part3},
	{Week: 11, Day: 53, Phase: PhaseRepresentation, Topic: "Examination of returns",
		Description: "Audit selection, correspondence versus field exams, and taxpayer rights.",
		Citation:    "Pub 556; Pub 1", ExamPart: Part3},
	{Week: 11, Day: 54, Phase: PhaseRepresentation, Topic: "The appeals process",
		Description: "Thirty-day letters, written protests, and Appeals conference practice.",
		Citation:    "Pub 5; Pub 556", ExamPart: Part3},
	{Week: 11, Day: 55, Phase: PhaseRepresentation, Topic: "The collection process",
		Description: "Liens and levies, installment agreements, offers in compromise, and CDP hearings.",
		Citation:    "IRC §§6320-6330; Pub 594", ExamPart: Part3},

	// Week 12: special procedures and review
	{Week: 12, Day: 56, Phase: PhaseRepresentation, Topic: "Penalties and interest",
		Description: "Failure-to-file and failure-to-pay penalties, accuracy penalties, and abatement relief.",
		Citation:    "IRC §§6651, 6662; IRM 20.1", ExamPart: Part3},
	{Week: 12, Day: 57, Phase: PhaseRepresentation, Topic: "Innocent spouse and injured spouse relief",
		Description: "Section 6015 relief types, equitable relief factors, and injured spouse allocation.",
		Citation:    "IRC §6015; Pub 971", ExamPart: Part3},
	{Week: 12, Day: 58, Phase: PhaseRepresentation, Topic: "Identity theft and data security",
		Description: "IP PINs, practitioner data safeguard duties, and reporting compromises.",
		Citation:    "Pub 5293; Pub 4557", ExamPart: Part3},
	{Week: 12, Day: 59, Phase: PhaseRepresentation, Topic: "Statutes of limitations",
		Description: "Assessment and collection periods, refund claim deadlines, and extensions by agreement.",
		Citation:    "IRC §§6501, 6502, 6511; Pub 556", ExamPart: Part3},
	{Week: 12, Day: 60, Phase: PhaseRepresentation, Topic: "Circular 230 capstone review",
		Description: "Cross-part review of practitioner ethics with exam-style application questions.",
		Citation:    "Treasury Circular 230", ExamPart: Part3},
}
