package xmrbazaar

import "fmt"

// In-page extraction scripts. Selector lists mirror the XMRBazaar markup
// with generic fallbacks for pages that predate the current theme.

func searchScript(limit int) string {
	return fmt.Sprintf(`
		(function() {
			var results = [];
			var limit = %d;
			var cards = document.querySelectorAll('.listings-product');

			for (var i = 0; i < cards.length && results.length < limit; i++) {
				var card = cards[i];

				var titleEl = card.querySelector('.listing-title-text');
				var priceEl = card.querySelector('.listings-product-price-value');
				var linkEl = card.querySelector('a');
				var imgEl = card.querySelector('.listings-product-img img');

				results.push({
					title:     titleEl ? titleEl.innerText.trim() : '',
					price:     priceEl ? priceEl.innerText.trim() : '',
					url:       linkEl ? (linkEl.getAttribute('href') || '') : '',
					thumbnail: imgEl ? (imgEl.getAttribute('src') || '') : ''
				});
			}

			return results;
		})()
	`, limit)
}

const listingScript = `
	(function() {
		var text = function(sel) {
			var el = document.querySelector(sel);
			return el ? el.innerText.trim() : '';
		};

		var vendorEl = document.querySelector('.listings-product-username, [class*="username"], .seller-name');

		var images = [];
		var imgEls = document.querySelectorAll('img[class*="product"], .gallery img');
		for (var i = 0; i < imgEls.length && images.length < 10; i++) {
			var src = imgEls[i].getAttribute('src');
			if (src) images.push(src);
		}

		return {
			title:       text('.listings-product-title, h1, [class*="title"]'),
			price:       text('.listings-product-price-value, [class*="price"]'),
			description: text('.listing-description, [class*="description"], .content'),
			category:    text('.listing-category, [class*="category"]'),
			condition:   text('.listing-condition, [class*="condition"]'),
			shipping:    text('.listing-delivery, [class*="delivery"], .listing-location'),
			vendor:      vendorEl ? vendorEl.innerText.trim() : '',
			vendorHref:  vendorEl ? (vendorEl.getAttribute('href') || '') : '',
			images:      images
		};
	})()
`

const vendorScript = `
	(function() {
		var text = function(sel) {
			var el = document.querySelector(sel);
			return el ? el.innerText.trim() : '';
		};

		var reviews = [];
		var reviewEls = document.querySelectorAll('[class*="review"]');
		for (var i = 0; i < reviewEls.length && reviews.length < 5; i++) {
			var t = reviewEls[i].innerText.trim();
			if (t) reviews.push(t);
		}

		return {
			username:    text('h1, [class*="username"], .profile-name'),
			rating:      text('[class*="rating"], .stars'),
			totalTrades: text('[class*="trades"], .completed'),
			memberSince: text('[class*="joined"], .member-since'),
			reviews:     reviews
		};
	})()
`
